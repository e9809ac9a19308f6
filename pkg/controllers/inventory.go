package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	_interface "github.com/sh5080/inventory-go/pkg/interfaces"
	requestDto "github.com/sh5080/inventory-go/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/inventory-go/pkg/types/dtos/responses"
	"github.com/sh5080/inventory-go/pkg/utils"
)

const errNotJSON = "The request payload is not in JSON format"

// ListInventories handles GET /inventories.
func ListInventories(svc _interface.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invs, err := svc.List()
		if err != nil {
			return serverError(c, "inventory", err)
		}

		results := responseDto.NewInventoryList(invs)
		return c.JSON(responseDto.InventoryList{
			Count:       len(results),
			Inventories: results,
			Message:     "success",
		})
	}
}

// CreateInventory handles POST /inventories.
func CreateInventory(svc _interface.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.CreateInventory
		if !c.Is("json") || c.BodyParser(&req) != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responseDto.Error{Error: errNotJSON})
		}

		inv, err := svc.Create(req)
		if err != nil {
			return inventoryError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(responseDto.Message{
			Message: fmt.Sprintf("inventory %s has been created successfully.", inv.Hostname),
		})
	}
}

// GetInventory handles GET /inventories/:id.
func GetInventory(svc _interface.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return notFound(c)
		}

		inv, err := svc.Get(id)
		if err != nil {
			return inventoryError(c, err)
		}

		return c.JSON(responseDto.InventoryDetail{
			Message:   "success",
			Inventory: responseDto.NewInventory(*inv),
		})
	}
}

// ReplaceInventory handles PUT /inventories/:id. All four fields are
// overwritten unconditionally.
func ReplaceInventory(svc _interface.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return notFound(c)
		}

		var req requestDto.ReplaceInventory
		if !c.Is("json") || c.BodyParser(&req) != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responseDto.Error{Error: errNotJSON})
		}

		inv, err := svc.Replace(id, req)
		if err != nil {
			return inventoryError(c, err)
		}

		return c.JSON(responseDto.Message{
			Message: fmt.Sprintf("inventory %s successfully updated", inv.Hostname),
		})
	}
}

// DeleteInventory handles DELETE /inventories/:id.
func DeleteInventory(svc _interface.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return notFound(c)
		}

		inv, err := svc.Delete(id)
		if err != nil {
			return inventoryError(c, err)
		}

		return c.JSON(responseDto.Message{
			Message: fmt.Sprintf("inventory %s successfully deleted.", inv.Hostname),
		})
	}
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot match a record, so the caller answers 404.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// inventoryError maps service errors onto the API error contract.
func inventoryError(c *fiber.Ctx, err error) error {
	var verrs utils.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(responseDto.Error{Error: verrs.Error()})
	}
	if errors.Is(err, _interface.ErrInventoryNotFound) {
		return notFound(c)
	}
	return serverError(c, "inventory", err)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(responseDto.Error{Error: "inventory not found"})
}

func serverError(c *fiber.Ctx, service string, err error) error {
	utils.RecordError(service, "internal")
	return c.Status(fiber.StatusInternalServerError).JSON(responseDto.Error{Error: err.Error()})
}
