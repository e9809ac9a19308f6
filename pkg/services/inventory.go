package service

import (
	_interface "github.com/sh5080/inventory-go/pkg/interfaces"
	request "github.com/sh5080/inventory-go/pkg/types/dtos/requests"
	model "github.com/sh5080/inventory-go/pkg/types/models"
	"github.com/sh5080/inventory-go/pkg/utils"
)

// InventoryService applies the CRUD contract on top of the repository.
// Each call maps to a single statement; there is no cross-request state.
type InventoryService struct {
	repo     _interface.InventoryRepository
	validate *utils.StructValidator
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(repo _interface.InventoryRepository) *InventoryService {
	return &InventoryService{
		repo:     repo,
		validate: utils.NewValidator(),
	}
}

// List returns all stored records.
func (s *InventoryService) List() ([]model.Inventory, error) {
	return s.repo.List()
}

// Get returns the record for id.
func (s *InventoryService) Get(id uint) (*model.Inventory, error) {
	return s.repo.GetByID(id)
}

// Create validates the payload and persists a new record.
func (s *InventoryService) Create(req request.CreateInventory) (*model.Inventory, error) {
	if errs := s.validate.Validate(&req); errs.HasErrors() {
		return nil, errs
	}

	inv := &model.Inventory{
		Hostname:        req.Hostname,
		Environment:     req.Environment,
		IPAddress:       req.IPAddress,
		ApplicationName: req.ApplicationName,
	}
	if err := s.repo.Create(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Replace overwrites all four fields of an existing record. Every key must
// be present in the payload; there is no partial update.
func (s *InventoryService) Replace(id uint, req request.ReplaceInventory) (*model.Inventory, error) {
	inv, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if errs := s.validate.Validate(&req); errs.HasErrors() {
		return nil, errs
	}

	inv.Hostname = *req.Hostname
	inv.Environment = *req.Environment
	inv.IPAddress = *req.IPAddress
	inv.ApplicationName = *req.ApplicationName
	if err := s.repo.Update(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Delete removes the record for id and returns it so callers can reference
// the hostname in the response.
func (s *InventoryService) Delete(id uint) (*model.Inventory, error) {
	inv, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(inv); err != nil {
		return nil, err
	}
	return inv, nil
}
