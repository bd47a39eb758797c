package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaterialHandler serves both materials and their category tree
type MaterialHandler struct {
	materialService service.MaterialService
	categoryService service.MaterialCategoryService
}

func NewMaterialHandler(materialService service.MaterialService, categoryService service.MaterialCategoryService) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
		categoryService: categoryService,
	}
}

// GetMaterials returns all live materials with their categories
// GET /api/v1/materials
func (h *MaterialHandler) GetMaterials(c *fiber.Ctx) error {
	materials, err := h.materialService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch materials")
	}
	return ok(c, materials)
}

// GetMaterial returns a single material by ID, soft-deleted included
// GET /api/v1/materials/:id
func (h *MaterialHandler) GetMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid material ID")
	}

	material, err := h.materialService.Get(id)
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, material)
}

// CreateMaterial handles material creation
// POST /api/v1/materials
func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	var req service.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	material, err := h.materialService.Create(&req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Material created successfully", material)
}

// UpdateMaterial handles material update
// PUT /api/v1/materials/:id
func (h *MaterialHandler) UpdateMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid material ID")
	}

	var req service.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	material, err := h.materialService.Update(id, &req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Material updated successfully", material)
}

// DeleteMaterial soft-deletes a material
// DELETE /api/v1/materials/:id
func (h *MaterialHandler) DeleteMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid material ID")
	}

	if err := h.materialService.Delete(id, actorID(c)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Material deleted successfully", nil)
}

// GetCategories returns all live material categories as a flat list
// GET /api/v1/material-categories
func (h *MaterialHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch material categories")
	}
	return ok(c, categories)
}

// GetCategoryTree returns the nested category hierarchy of live rows
// GET /api/v1/material-categories/tree
func (h *MaterialHandler) GetCategoryTree(c *fiber.Ctx) error {
	nodes, err := h.categoryService.Tree()
	if err != nil {
		return fail(c, 500, "Failed to build category tree")
	}
	return ok(c, nodes)
}

// GetCategory returns a single category by ID
// GET /api/v1/material-categories/:id
func (h *MaterialHandler) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid category ID")
	}

	category, err := h.categoryService.Get(uint(id))
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, category)
}

// CreateCategory handles category creation
// POST /api/v1/material-categories
func (h *MaterialHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CreateMaterialCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	category, err := h.categoryService.Create(&req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "Category created successfully", category)
}

// UpdateCategory handles category update, including reparenting
// PUT /api/v1/material-categories/:id
func (h *MaterialHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid category ID")
	}

	var req service.UpdateMaterialCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	category, err := h.categoryService.Update(uint(id), &req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Category updated successfully", category)
}

// DeleteCategory soft-deletes a category when nothing depends on it
// DELETE /api/v1/material-categories/:id
func (h *MaterialHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, 400, "Invalid category ID")
	}

	if err := h.categoryService.Delete(uint(id), actorID(c)); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Category deleted successfully", nil)
}
