package logger

import (
	"github.com/gofiber/fiber/v2"
	logmw "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
)

// LoggerMiddleware logs every request line.
func LoggerMiddleware() fiber.Handler {
	return logmw.New(logmw.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency} reqid=${locals:reqid}\n",
	})
}

// RequestIDMiddleware tags each request with an id, honoring an inbound
// X-Request-ID when the caller already has one.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		return c.Next()
	}
}
