package handler

import (
	"errors"

	"go-inventory-api/internal/service"
	"go-inventory-api/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actorID extracts the authenticated user's id from the request context
// (set by the auth middleware).
func actorID(c *fiber.Ctx) uuid.UUID {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// failService maps a service error onto the envelope: not-found sentinels
// become 404, validation and business-rule failures 400, everything else
// 500 with the given message.
func failService(c *fiber.Ctx, err error, message string) error {
	var vErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return response.Fail(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.As(err, &vErr),
		errors.Is(err, service.ErrSKUExists),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrEmailExists):
		return response.Fail(c, fiber.StatusBadRequest, message, err)
	default:
		return response.Fail(c, fiber.StatusInternalServerError, message, err)
	}
}
