package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
}

func NewDepartmentHandler(deptService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptService: deptService}
}

// GetDepartments returns all departments as a flat list
// GET /api/v1/departments
func (h *DepartmentHandler) GetDepartments(c *fiber.Ctx) error {
	depts, err := h.deptService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch departments")
	}
	return ok(c, depts)
}

// GetDepartmentTree returns the nested department hierarchy
// GET /api/v1/departments/tree
func (h *DepartmentHandler) GetDepartmentTree(c *fiber.Ctx) error {
	nodes, err := h.deptService.Tree()
	if err != nil {
		return fail(c, 500, "Failed to build department tree")
	}
	return ok(c, nodes)
}

// GetDepartment returns a single department by ID
// GET /api/v1/departments/:id
func (h *DepartmentHandler) GetDepartment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid department ID")
	}

	dept, err := h.deptService.Get(uint(id))
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, dept)
}

// CreateDepartment handles department creation
// POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var req service.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	dept, err := h.deptService.Create(&req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Department created successfully", dept)
}

// UpdateDepartment handles department update, including reparenting
// PUT /api/v1/departments/:id
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid department ID")
	}

	var req service.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	dept, err := h.deptService.Update(uint(id), &req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Department updated successfully", dept)
}

// DeleteDepartment removes a department when nothing depends on it
// DELETE /api/v1/departments/:id
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid department ID")
	}

	if err := h.deptService.Delete(uint(id)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Department deleted successfully", nil)
}
