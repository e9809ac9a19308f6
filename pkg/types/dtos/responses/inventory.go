package response

import (
	model "github.com/sh5080/inventory-go/pkg/types/models"
)

// Inventory is the serialized record shape returned by the API.
type Inventory struct {
	Hostname        string `json:"hostname"`
	Environment     string `json:"environment"`
	IPAddress       string `json:"ipaddress"`
	ApplicationName string `json:"applicationname"`
}

// NewInventory maps a stored record to its API shape.
func NewInventory(inv model.Inventory) Inventory {
	return Inventory{
		Hostname:        inv.Hostname,
		Environment:     inv.Environment,
		IPAddress:       inv.IPAddress,
		ApplicationName: inv.ApplicationName,
	}
}

// NewInventoryList maps stored records to their API shapes. The result is
// never nil so an empty table serializes as [].
func NewInventoryList(invs []model.Inventory) []Inventory {
	results := make([]Inventory, 0, len(invs))
	for _, inv := range invs {
		results = append(results, NewInventory(inv))
	}
	return results
}

// InventoryList is the GET /inventories response.
type InventoryList struct {
	Count       int         `json:"count"`
	Inventories []Inventory `json:"inventories"`
	Message     string      `json:"message"`
}

// InventoryDetail is the GET /inventories/:id response.
type InventoryDetail struct {
	Message   string    `json:"message"`
	Inventory Inventory `json:"inventory"`
}

// Message is the plain success envelope used by create/replace/delete.
type Message struct {
	Message string `json:"message"`
}

// Error is the envelope for client and server errors.
type Error struct {
	Error string `json:"error"`
}
