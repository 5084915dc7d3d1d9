package middleware

import (
	"strings"

	"go-inventory-api/internal/repository"
	"go-inventory-api/pkg/jwt"
	"go-inventory-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the Bearer token and puts the actor's identity
// into the request context for downstream handlers.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Fail(c, 401, "Missing authorization token", nil)
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return response.Fail(c, 401, "Invalid authorization format. Use: Bearer <token>", nil)
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return response.Fail(c, 401, "Invalid or expired token", nil)
		}

		// The token must still resolve to an existing user
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return response.Fail(c, 401, "User not found", nil)
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("username", user.Username)
		c.Locals("user_email", user.Email)

		return c.Next()
	}
}
