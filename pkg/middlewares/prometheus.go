package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sh5080/inventory-go/pkg/utils"
)

// Prometheus records request metrics and periodically samples server state.
func Prometheus(serverName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		method := c.Method()
		path := c.Route().Path
		status := c.Response().StatusCode()

		utils.RecordRequest(method, path, status, duration)

		updateServerMetrics(serverName)

		return err
	}
}

var lastMetricUpdate time.Time

// updateServerMetrics refreshes the server gauges at most every 10 seconds;
// sampling cpu and memory on every request would be wasteful.
func updateServerMetrics(serverName string) {
	now := time.Now()
	if now.Sub(lastMetricUpdate) < 10*time.Second {
		return
	}
	lastMetricUpdate = now

	cpuUsage, memoryUsage := utils.GetSystemMetrics()

	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	healthy := 1.0
	if cpuUsage > 0.9 || memoryUsage > 0.95 {
		healthy = 0.0
	}

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	utils.UpdateServerMetric(serverName, "cpu", cpuUsage)
	utils.UpdateServerMetric(serverName, "memory", memoryUsage)
	utils.UpdateServerMetric(serverName, "load", load)
	utils.UpdateServerMetric(serverName, "healthy", healthy)
	utils.UpdateServerMetric(serverName, "capacity", capacity)
}
