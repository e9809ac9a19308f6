package _interface

import (
	"errors"

	request "github.com/sh5080/inventory-go/pkg/types/dtos/requests"
	model "github.com/sh5080/inventory-go/pkg/types/models"
)

// ErrInventoryNotFound is returned when an id matches no stored record.
var ErrInventoryNotFound = errors.New("inventory not found")

// InventoryRepository abstracts access to the inventories table.
type InventoryRepository interface {
	// List returns every record in insertion order.
	List() ([]model.Inventory, error)
	// GetByID returns the record for id or ErrInventoryNotFound.
	GetByID(id uint) (*model.Inventory, error)
	// Create persists a new record and fills in the assigned id.
	Create(inv *model.Inventory) error
	// Update overwrites an existing record.
	Update(inv *model.Inventory) error
	// Delete removes a record permanently.
	Delete(inv *model.Inventory) error
}

// InventoryService implements the CRUD contract over the repository.
type InventoryService interface {
	List() ([]model.Inventory, error)
	Get(id uint) (*model.Inventory, error)
	Create(req request.CreateInventory) (*model.Inventory, error)
	Replace(id uint, req request.ReplaceInventory) (*model.Inventory, error)
	Delete(id uint) (*model.Inventory, error)
}
