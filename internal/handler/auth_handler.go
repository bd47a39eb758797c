package handler

import (
	"errors"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
	menuService service.MenuService
}

func NewAuthHandler(authService service.AuthService, menuService service.MenuService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		menuService: menuService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest represents the token refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	if req.Username == "" || req.Password == "" {
		return fail(c, 400, "Username and password are required")
	}

	response, err := h.authService.Login(req.Username, req.Password, c.IP())
	if err != nil {
		// Credential and account-state failures are both 401; the message
		// distinguishes them
		if errors.Is(err, service.ErrAccountDisabled) {
			return fail(c, 401, "Account is disabled")
		}
		return fail(c, 401, "Invalid username or password")
	}

	return okMessage(c, "Login successful", response)
}

// Refresh exchanges a refresh token for a new access token
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}
	if req.RefreshToken == "" {
		return fail(c, 400, "refresh_token is required")
	}

	response, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		return fail(c, 401, "Invalid or expired refresh token")
	}

	return ok(c, response)
}

// Logout revokes every outstanding token for the session's user
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	// Best effort: an already-invalid token still counts as logged out
	_ = h.authService.Logout(req.RefreshToken)

	return okMessage(c, "Logged out", nil)
}

// Me returns the authenticated user's profile with resolved permissions
// GET /api/v1/auth/user
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok2 := c.Locals("user").(*model.User)
	if !ok2 {
		return fail(c, 401, "Unauthorized")
	}

	profile, err := h.authService.Profile(user.ID)
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, profile)
}

// Menus returns the navigation tree filtered to the user's permissions
// GET /api/v1/auth/menus
func (h *AuthHandler) Menus(c *fiber.Ctx) error {
	user, ok2 := c.Locals("user").(*model.User)
	if !ok2 {
		return fail(c, 401, "Unauthorized")
	}

	menus, err := h.menuService.UserTree(user)
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, menus)
}
