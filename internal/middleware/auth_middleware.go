package middleware

import (
	"strings"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(401).JSON(fiber.Map{"code": 401, "message": message, "data": nil})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(403).JSON(fiber.Map{"code": 403, "message": message, "data": nil})
}

// RequireAuth validates the access token and loads the live user into the
// request context. Handlers downstream read c.Locals("user") as *model.User.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Missing authorization token")
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
		}

		// Validate token; refresh tokens are rejected here
		claims, err := jwt.ValidateAccessToken(parts[1])
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		// Check strict session against DB
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return unauthorized(c, "User not found")
		}

		if user.TokenVersion != claims.TokenVersion {
			return unauthorized(c, "Session expired, please log in again")
		}

		if !user.IsActive || user.Status != model.UserStatusActive {
			return unauthorized(c, "Account is disabled")
		}

		// Set user info in context for downstream handlers
		c.Locals("user", user)
		c.Locals("user_id", user.ID.String())

		return c.Next()
	}
}

// RequirePermission gates a route on one permission code. The superuser
// bypass lives inside EffectivePermissions, not here.
func RequirePermission(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*model.User)
		if !ok {
			return forbidden(c, "No authenticated user")
		}

		if !user.EffectivePermissions().Has(code) {
			return forbidden(c, "Forbidden: requires '"+code+"' permission")
		}

		return c.Next()
	}
}

// RequireAnyPermission passes when the user holds at least one of the codes
func RequireAnyPermission(codes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*model.User)
		if !ok {
			return forbidden(c, "No authenticated user")
		}

		perms := user.EffectivePermissions()
		for _, code := range codes {
			if perms.Has(code) {
				return c.Next()
			}
		}

		return forbidden(c, "Forbidden: requires one of "+strings.Join(codes, ", "))
	}
}
