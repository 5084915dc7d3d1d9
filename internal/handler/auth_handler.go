package handler

import (
	"go-inventory-api/internal/service"
	"go-inventory-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new API user.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		return failService(c, err, "Error registering user")
	}
	return response.Created(c, "User registered successfully", user)
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON", err)
	}

	if req.Email == "" || req.Password == "" {
		return response.Fail(c, 400, "Email and password are required", nil)
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		// Authentication failures are always 401
		return response.Fail(c, 401, err.Error(), nil)
	}
	return response.OK(c, result)
}

// Me returns the authenticated actor.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(actorID(c))
	if err != nil {
		return failService(c, err, "Error fetching user")
	}
	return response.OK(c, user)
}
