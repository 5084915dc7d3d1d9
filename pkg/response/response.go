package response

import "github.com/gofiber/fiber/v2"

// Envelope is the uniform JSON wrapper returned by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	Pages   *int        `json:"pages,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Data: data})
}

func OKMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Message: message, Data: data})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Message: message, Data: data})
}

// List wraps a full (unpaged) listing with its record count.
func List(c *fiber.Ctx, count int, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Count: &count, Data: data})
}

// Paged wraps a paginated listing. Count is the number of records on this
// page, total the number of matching records overall.
func Paged(c *fiber.Ctx, count int, total int64, page, pages int, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Count:   &count,
		Total:   &total,
		Page:    &page,
		Pages:   &pages,
		Data:    data,
	})
}

// Fail emits a failure envelope. err is optional; when present its message
// is surfaced verbatim in the error field.
func Fail(c *fiber.Ctx, status int, message string, err error) error {
	env := Envelope{Success: false, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	return c.Status(status).JSON(env)
}
