package gateway

import (
	"crypto/subtle"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/babelgateco/babelgate/pkg/metrics"
	"github.com/babelgateco/babelgate/pkg/translate"
)

const requestIDKey = "request_id"

// requestID stamps every request with a UUID, echoed in the X-Request-ID
// response header and available to later handlers via locals.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Set("X-Request-ID", id)
		c.Locals(requestIDKey, id)
		return c.Next()
	}
}

// requestLogger records method, path, status, and duration per request,
// and feeds the request counter.
func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		id, _ := c.Locals(requestIDKey).(string)

		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		)
		metrics.RequestsTotal.WithLabelValues(c.Method(), c.Path(), strconv.Itoa(status)).Inc()

		return err
	}
}

// apiKeyGuard requires a valid X-API-Key header when a key is configured.
// Health and metrics stay open so monitoring works without credentials.
func apiKeyGuard(expectedKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if expectedKey == "" {
			return c.Next()
		}

		if c.Path() == "/health" || c.Path() == "/metrics" {
			return c.Next()
		}

		provided := c.Get("X-API-Key")
		if provided == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(translate.ErrorResponse{Detail: "missing API key"})
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expectedKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).
				JSON(translate.ErrorResponse{Detail: "invalid API key"})
		}

		return c.Next()
	}
}
