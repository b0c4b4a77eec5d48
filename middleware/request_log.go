package middleware

import (
	"time"

	"agency-backend/logger"
	"agency-backend/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger pushes one audit entry per API request into the async
// logger's channel. The DB write happens off the request path.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:       c.Method(),
			URL:          c.OriginalURL(),
			RequestBody:  string(c.Body()),
			ResponseBody: string(c.Response().Body()),
			StatusCode:   c.Response().StatusCode(),
			CreatedAt:    time.Now(),
		})

		return err
	}
}
