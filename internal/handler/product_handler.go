package handler

import (
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/service"
	"go-inventory-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAll()
	if err != nil {
		return response.Fail(c, 500, "Error fetching products", err)
	}
	return response.List(c, len(products), products)
}

// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "product not found", nil)
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return failService(c, err, "Error fetching product")
	}
	return response.OK(c, product)
}

// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	created, err := h.service.Create(&product)
	if err != nil {
		return failService(c, err, "Error creating product")
	}
	return response.Created(c, "Product created successfully", created)
}

// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "product not found", nil)
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	updated, err := h.service.Update(id, &req)
	if err != nil {
		return failService(c, err, "Error updating product")
	}
	return response.OKMessage(c, "Product updated successfully", updated)
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "product not found", nil)
	}

	if err := h.service.Delete(id); err != nil {
		return failService(c, err, "Error deleting product")
	}
	return response.OKMessage(c, "Product deleted successfully", fiber.Map{})
}
