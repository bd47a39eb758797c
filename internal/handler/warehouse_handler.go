package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WarehouseHandler struct {
	warehouseService service.WarehouseService
}

func NewWarehouseHandler(warehouseService service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// GetWarehouses returns all live warehouses
// GET /api/v1/warehouses
func (h *WarehouseHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.warehouseService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch warehouses")
	}
	return ok(c, warehouses)
}

// GetWarehouse returns a single warehouse by ID, soft-deleted included
// GET /api/v1/warehouses/:id
func (h *WarehouseHandler) GetWarehouse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid warehouse ID")
	}

	warehouse, err := h.warehouseService.Get(id)
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, warehouse)
}

// CreateWarehouse handles warehouse creation
// POST /api/v1/warehouses
func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var req service.CreateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	warehouse, err := h.warehouseService.Create(&req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Warehouse created successfully", warehouse)
}

// UpdateWarehouse handles warehouse update
// PUT /api/v1/warehouses/:id
func (h *WarehouseHandler) UpdateWarehouse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid warehouse ID")
	}

	var req service.UpdateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	warehouse, err := h.warehouseService.Update(id, &req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Warehouse updated successfully", warehouse)
}

// DeleteWarehouse soft-deletes a warehouse
// DELETE /api/v1/warehouses/:id
func (h *WarehouseHandler) DeleteWarehouse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid warehouse ID")
	}

	if err := h.warehouseService.Delete(id, actorID(c)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Warehouse deleted successfully", nil)
}
