package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GetCustomers returns all live customers
// GET /api/v1/customers
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.customerService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch customers")
	}
	return ok(c, customers)
}

// GetCustomer returns a single customer by ID, soft-deleted included
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid customer ID")
	}

	customer, err := h.customerService.Get(id)
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, customer)
}

// CreateCustomer handles customer creation
// POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	customer, err := h.customerService.Create(&req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Customer created successfully", customer)
}

// UpdateCustomer handles customer update
// PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid customer ID")
	}

	var req service.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	customer, err := h.customerService.Update(id, &req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Customer updated successfully", customer)
}

// DeleteCustomer soft-deletes a customer
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid customer ID")
	}

	if err := h.customerService.Delete(id, actorID(c)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Customer deleted successfully", nil)
}
