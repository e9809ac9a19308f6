package route

import (
	"github.com/gofiber/fiber/v2"

	controller "github.com/sh5080/inventory-go/pkg/controllers"
	_interface "github.com/sh5080/inventory-go/pkg/interfaces"
)

// SetupInventoryRoutes registers the inventory CRUD routes under endpoint.
func SetupInventoryRoutes(endpoint string, router fiber.Router, services *_interface.ServiceContainer) {
	router.Get(endpoint, controller.ListInventories(services.InventoryService))
	router.Post(endpoint, controller.CreateInventory(services.InventoryService))
	router.Get(endpoint+"/:id", controller.GetInventory(services.InventoryService))
	router.Put(endpoint+"/:id", controller.ReplaceInventory(services.InventoryService))
	router.Delete(endpoint+"/:id", controller.DeleteInventory(services.InventoryService))
}
