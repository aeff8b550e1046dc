package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/cities-in-motion/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logger пишет access-лог запроса и время ответа в метрики
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		elapsed := time.Since(start)
		route := c.Route().Path
		metrics.RequestDurationMs.
			WithLabelValues(c.Method(), route, strconv.Itoa(status)).
			Observe(float64(elapsed.Microseconds()) / 1000)

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("ip", c.IP()),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("HTTP request", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Debug("HTTP request", fields...)
		}

		return err
	}
}
