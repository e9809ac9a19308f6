package route

import (
	"github.com/gofiber/fiber/v2"

	controller "github.com/sh5080/inventory-go/pkg/controllers"
)

// SetupAppRoutes registers the banner, health and metrics routes.
func SetupAppRoutes(app *fiber.App) {
	app.Get("/", controller.Root())
	app.Get("/health", controller.Health())
	app.Get("/metrics", controller.Metrics())
}
