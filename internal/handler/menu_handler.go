package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenus returns all menus as a flat list
// GET /api/v1/menus
func (h *MenuHandler) GetMenus(c *fiber.Ctx) error {
	menus, err := h.menuService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch menus")
	}
	return ok(c, menus)
}

// GetMenuTree returns the full navigation tree for the management screen
// GET /api/v1/menus/tree
func (h *MenuHandler) GetMenuTree(c *fiber.Ctx) error {
	nodes, err := h.menuService.Tree()
	if err != nil {
		return fail(c, 500, "Failed to build menu tree")
	}
	return ok(c, nodes)
}

// GetMenu returns a single menu by ID
// GET /api/v1/menus/:id
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid menu ID")
	}

	menu, err := h.menuService.Get(uint(id))
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, menu)
}

// CreateMenu handles menu creation
// POST /api/v1/menus
func (h *MenuHandler) CreateMenu(c *fiber.Ctx) error {
	var req service.CreateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	menu, err := h.menuService.Create(&req)
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Menu created successfully", menu)
}

// UpdateMenu handles menu update, including reparenting
// PUT /api/v1/menus/:id
func (h *MenuHandler) UpdateMenu(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid menu ID")
	}

	var req service.UpdateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	menu, err := h.menuService.Update(uint(id), &req)
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Menu updated successfully", menu)
}

// DeleteMenu removes a childless menu
// DELETE /api/v1/menus/:id
func (h *MenuHandler) DeleteMenu(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid menu ID")
	}

	if err := h.menuService.Delete(uint(id)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Menu deleted successfully", nil)
}
