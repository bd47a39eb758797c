package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SupplierHandler struct {
	supplierService service.SupplierService
}

func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// GetSuppliers returns all live suppliers
// GET /api/v1/suppliers
func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.supplierService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch suppliers")
	}
	return ok(c, suppliers)
}

// GetSupplier returns a single supplier by ID, soft-deleted included
// GET /api/v1/suppliers/:id
func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid supplier ID")
	}

	supplier, err := h.supplierService.Get(id)
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, supplier)
}

// CreateSupplier handles supplier creation
// POST /api/v1/suppliers
func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var req service.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	supplier, err := h.supplierService.Create(&req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Supplier created successfully", supplier)
}

// UpdateSupplier handles supplier update
// PUT /api/v1/suppliers/:id
func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid supplier ID")
	}

	var req service.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	supplier, err := h.supplierService.Update(id, &req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Supplier updated successfully", supplier)
}

// DeleteSupplier soft-deletes a supplier
// DELETE /api/v1/suppliers/:id
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid supplier ID")
	}

	if err := h.supplierService.Delete(id, actorID(c)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Supplier deleted successfully", nil)
}
