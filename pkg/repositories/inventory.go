package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	_interface "github.com/sh5080/inventory-go/pkg/interfaces"
	model "github.com/sh5080/inventory-go/pkg/types/models"
)

// InventoryRepository reads and writes the inventories table through an
// injected gorm handle.
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository.
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// List returns every record ordered by id, i.e. insertion order.
func (r *InventoryRepository) List() ([]model.Inventory, error) {
	var invs []model.Inventory
	if err := r.db.Order("id").Find(&invs).Error; err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	return invs, nil
}

// GetByID returns the record for id or ErrInventoryNotFound.
func (r *InventoryRepository) GetByID(id uint) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, _interface.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("get inventory %d: %w", id, err)
	}
	return &inv, nil
}

// Create inserts a new record; the database assigns the id.
func (r *InventoryRepository) Create(inv *model.Inventory) error {
	if err := r.db.Create(inv).Error; err != nil {
		return fmt.Errorf("create inventory: %w", err)
	}
	return nil
}

// Update overwrites all columns of an existing record.
func (r *InventoryRepository) Update(inv *model.Inventory) error {
	if err := r.db.Save(inv).Error; err != nil {
		return fmt.Errorf("update inventory %d: %w", inv.ID, err)
	}
	return nil
}

// Delete removes a record permanently.
func (r *InventoryRepository) Delete(inv *model.Inventory) error {
	if err := r.db.Delete(inv).Error; err != nil {
		return fmt.Errorf("delete inventory %d: %w", inv.ID, err)
	}
	return nil
}
