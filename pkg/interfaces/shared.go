package _interface

// ServiceContainer holds every service instance handed to route setup.
type ServiceContainer struct {
	InventoryService InventoryService
}
