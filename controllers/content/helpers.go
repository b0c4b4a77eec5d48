package content

import (
	"agency-backend/types"

	"github.com/gofiber/fiber/v2"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
		Data:    nil,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: message,
		Data:    nil,
	})
}

func dbError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
		Data:    nil,
	})
}
