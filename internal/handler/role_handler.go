package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// GetRoles returns all roles with their permissions
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roleService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch roles")
	}
	return ok(c, roles)
}

// GetRole returns a single role by ID
// GET /api/v1/roles/:id
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid role ID")
	}

	role, err := h.roleService.Get(uint(id))
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, role)
}

// CreateRole handles role creation
// POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req service.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	role, err := h.roleService.Create(&req)
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Role created successfully", role)
}

// UpdateRole handles role update
// PUT /api/v1/roles/:id
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid role ID")
	}

	var req service.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	role, err := h.roleService.Update(uint(id), &req)
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Role updated successfully", role)
}

// DeleteRole removes a non-system role
// DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid role ID")
	}

	if err := h.roleService.Delete(uint(id)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Role deleted successfully", nil)
}

// AssignPermissions replaces the role's permission set
// PUT /api/v1/roles/:id/permissions
func (h *RoleHandler) AssignPermissions(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid role ID")
	}

	var req service.AssignPermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	role, err := h.roleService.AssignPermissions(uint(id), &req)
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Permissions assigned successfully", role)
}
