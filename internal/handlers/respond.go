package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salintempel/dto"
)

func success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.Response{
		Status:   "success",
		EndPoint: c.OriginalURL(),
		Method:   c.Method(),
		Data:     data,
	})
}

func fail(c *fiber.Ctx, status int, message string, errs ...string) error {
	return c.Status(status).JSON(dto.FailResponse{
		Status:   "fail",
		EndPoint: c.OriginalURL(),
		Method:   c.Method(),
		Message:  message,
		Errors:   errs,
	})
}
