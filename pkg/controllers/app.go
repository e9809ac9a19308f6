package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sh5080/inventory-go/pkg/configs"
	responseDto "github.com/sh5080/inventory-go/pkg/types/dtos/responses"
)

var startTime = time.Now()

// Root answers the service banner on GET /.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(responseDto.RootResponse{
			Message: "This is an inventory service",
		})
	}
}

// Health reports liveness details.
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(responseDto.HealthResponse{
			Status:    "ok",
			Time:      time.Now(),
			Version:   configs.AppVersion,
			Uptime:    time.Since(startTime).String(),
			GoVersion: runtime.Version(),
		})
	}
}

// Metrics exposes the Prometheus registry in text format.
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
