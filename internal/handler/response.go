package handler

import (
	"errors"

	"go-erp-backoffice/internal/service"
	"go-erp-backoffice/internal/tree"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Response is the uniform API envelope. Code mirrors the HTTP status so
// clients behind status-stripping proxies can still branch on it.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Response{Code: 200, Message: "success", Data: data})
}

func okMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{Code: 200, Message: message, Data: data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(201).JSON(Response{Code: 201, Message: message, Data: data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Code: status, Message: message, Data: nil})
}

var notFoundErrs = []error{
	service.ErrUserNotFound,
	service.ErrDepartmentNotFound,
	service.ErrRoleNotFound,
	service.ErrPermissionNotFound,
	service.ErrMenuNotFound,
	service.ErrCustomerNotFound,
	service.ErrSupplierNotFound,
	service.ErrMaterialNotFound,
	service.ErrWarehouseNotFound,
	service.ErrCategoryNotFound,
}

// failFromService maps service errors onto HTTP statuses: not-found
// sentinels become 404, blocked deletes and cycles 400, the rest 400 as
// plain validation or reference failures.
func failFromService(c *fiber.Ctx, err error) error {
	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			return fail(c, 404, err.Error())
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, 404, "record not found")
	}

	var blocked *service.DeleteBlockedError
	if errors.As(err, &blocked) {
		return fail(c, 400, blocked.Error())
	}
	var cycle *tree.CycleError
	if errors.As(err, &cycle) {
		return fail(c, 400, cycle.Error())
	}

	return fail(c, 400, err.Error())
}

// actorID returns the authenticated user's id for audit columns
func actorID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return "system"
}
