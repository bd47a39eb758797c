package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PermissionHandler struct {
	permService service.PermissionService
}

func NewPermissionHandler(permService service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permService: permService}
}

// GetPermissions returns the full catalog, optionally grouped by module
// GET /api/v1/permissions?grouped=true
func (h *PermissionHandler) GetPermissions(c *fiber.Ctx) error {
	if c.Query("grouped") == "true" {
		grouped, err := h.permService.ListGrouped()
		if err != nil {
			return fail(c, 500, "Failed to fetch permissions")
		}
		return ok(c, grouped)
	}

	perms, err := h.permService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch permissions")
	}
	return ok(c, perms)
}

// GetPermission returns a single permission by ID
// GET /api/v1/permissions/:id
func (h *PermissionHandler) GetPermission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid permission ID")
	}

	perm, err := h.permService.Get(uint(id))
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, perm)
}

// CreatePermission adds a custom permission to the catalog
// POST /api/v1/permissions
func (h *PermissionHandler) CreatePermission(c *fiber.Ctx) error {
	var req service.CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	perm, err := h.permService.Create(&req)
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Permission created successfully", perm)
}

// UpdatePermission updates a permission's display fields
// PUT /api/v1/permissions/:id
func (h *PermissionHandler) UpdatePermission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid permission ID")
	}

	var req service.UpdatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	perm, err := h.permService.Update(uint(id), &req)
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Permission updated successfully", perm)
}

// DeletePermission removes an unreferenced permission
// DELETE /api/v1/permissions/:id
func (h *PermissionHandler) DeletePermission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid permission ID")
	}

	if err := h.permService.Delete(uint(id)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Permission deleted successfully", nil)
}
