package handler

import (
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"
	"go-inventory-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// GetTransactions lists transactions sorted by date descending.
// GET /api/v1/transactions?productId=&type=&page=&limit=
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	var filter repository.TransactionFilter
	if raw := c.Query("productId"); raw != "" {
		productID, err := parseUUID(raw)
		if err != nil {
			return response.Fail(c, 400, "Invalid product ID", err)
		}
		filter.ProductID = &productID
	}
	filter.Type = c.Query("type")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	result, err := h.service.List(filter, page, limit)
	if err != nil {
		return response.Fail(c, 500, "Error fetching transactions", err)
	}
	return response.Paged(c, len(result.Items), result.Total, result.Page, result.Pages, result.Items)
}

// GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "transaction not found", nil)
	}

	tx, err := h.service.GetByID(id)
	if err != nil {
		return failService(c, err, "Error fetching transaction")
	}
	return response.OK(c, tx)
}

// CreateTransaction records a stock movement for the authenticated actor.
// POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	tx, err := h.service.Create(&req, actorID(c))
	if err != nil {
		return failService(c, err, "Error creating transaction")
	}
	return response.Created(c, "Transaction created successfully", tx)
}

// DeleteTransaction reverses the stock effect and removes the record.
// DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 404, "transaction not found", nil)
	}

	if err := h.service.Delete(id); err != nil {
		return failService(c, err, "Error deleting transaction")
	}
	return response.OKMessage(c, "Transaction deleted successfully", fiber.Map{})
}
