package handler

import (
	"go-erp-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns all users
// GET /api/v1/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return fail(c, 500, "Failed to fetch users")
	}
	return ok(c, users)
}

// GetUser returns a single user by ID
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		return failFromService(c, err)
	}
	return ok(c, user)
}

// CreateUser handles user creation
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	user, err := h.userService.Create(&req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return created(c, "User created successfully", user)
}

// UpdateUser handles user update
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	user, err := h.userService.Update(userID, &req, actorID(c))
	if err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "User updated successfully", user)
}

// DeleteUser handles user deletion
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	if err := h.userService.Delete(userID); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "User deleted successfully", nil)
}

// ResetPassword sets a new password for the user and revokes their sessions
// POST /api/v1/users/:id/reset_password
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	var req service.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	if err := h.userService.ResetPassword(userID, &req); err != nil {
		return failFromService(c, err)
	}

	return okMessage(c, "Password reset successfully", nil)
}
