package handler

import (
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/service"
	"go-inventory-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// GetCategories lists all categories sorted by name.
// GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAll()
	if err != nil {
		return response.Fail(c, 500, "Error fetching categories", err)
	}
	return response.List(c, len(categories), categories)
}

// GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "category not found", nil)
	}

	category, err := h.service.GetByID(id)
	if err != nil {
		return failService(c, err, "Error fetching category")
	}
	return response.OK(c, category)
}

// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	created, err := h.service.Create(&category)
	if err != nil {
		return failService(c, err, "Error creating category")
	}
	return response.Created(c, "Category created successfully", created)
}

// PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "category not found", nil)
	}

	var req service.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	updated, err := h.service.Update(id, &req)
	if err != nil {
		return failService(c, err, "Error updating category")
	}
	return response.OKMessage(c, "Category updated successfully", updated)
}

// DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "category not found", nil)
	}

	if err := h.service.Delete(id); err != nil {
		return failService(c, err, "Error deleting category")
	}
	return response.OKMessage(c, "Category deleted successfully", fiber.Map{})
}
