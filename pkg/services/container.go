package service

import (
	"gorm.io/gorm"

	_interface "github.com/sh5080/inventory-go/pkg/interfaces"
	repository "github.com/sh5080/inventory-go/pkg/repositories"
)

// NewServiceContainer wires repositories and services around the injected
// database handle. Nothing here is a package-level singleton; the handle is
// owned by the entrypoint.
func NewServiceContainer(gdb *gorm.DB) *_interface.ServiceContainer {
	inventoryRepository := repository.NewInventoryRepository(gdb)
	inventoryService := NewInventoryService(inventoryRepository)

	return &_interface.ServiceContainer{
		InventoryService: inventoryService,
	}
}
