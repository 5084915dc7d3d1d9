package handler

import (
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/service"
	"go-inventory-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

// GetSuppliers lists all suppliers sorted by name.
// GET /api/v1/suppliers
func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAll()
	if err != nil {
		return response.Fail(c, 500, "Error fetching suppliers", err)
	}
	return response.List(c, len(suppliers), suppliers)
}

// GET /api/v1/suppliers/:id
func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "supplier not found", nil)
	}

	supplier, err := h.service.GetByID(id)
	if err != nil {
		return failService(c, err, "Error fetching supplier")
	}
	return response.OK(c, supplier)
}

// POST /api/v1/suppliers
func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	created, err := h.service.Create(&supplier)
	if err != nil {
		return failService(c, err, "Error creating supplier")
	}
	return response.Created(c, "Supplier created successfully", created)
}

// PUT /api/v1/suppliers/:id
func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "supplier not found", nil)
	}

	var req service.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	updated, err := h.service.Update(id, &req)
	if err != nil {
		return failService(c, err, "Error updating supplier")
	}
	return response.OKMessage(c, "Supplier updated successfully", updated)
}

// DELETE /api/v1/suppliers/:id
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "supplier not found", nil)
	}

	if err := h.service.Delete(id); err != nil {
		return failService(c, err, "Error deleting supplier")
	}
	return response.OKMessage(c, "Supplier deleted successfully", fiber.Map{})
}
