package route

import (
	"github.com/gofiber/fiber/v2"

	_interface "github.com/sh5080/inventory-go/pkg/interfaces"
)

// SetupRoutes registers every route of the application on app.
func SetupRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	SetupAppRoutes(app)
	SetupInventoryRoutes("/inventories", app, services)
}
