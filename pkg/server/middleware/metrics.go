package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/prometheus"
	"github.com/Setharkk/Skyent-dev/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader    = "X-Request-ID"
	RequestIDLocalsKey = "request_id"
)

type metricsMiddleware struct {
	logger  *logrus.Logger
	enabled bool
}

// NewMetricsMiddleware logs one entry per request and, when enabled, feeds the
// HTTP counters and latency histogram. Websocket streams are skipped.
func NewMetricsMiddleware(logger *logrus.Logger, enabled bool) Middleware {
	return &metricsMiddleware{
		logger:  logger,
		enabled: enabled,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.Contains(c.Path(), "/ws") {
			return c.Next()
		}

		startTime := time.Now()
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(RequestIDLocalsKey, requestID)
		c.Set(RequestIDHeader, requestID)

		nextErr := c.Next()

		status := c.Response().StatusCode()
		if nextErr != nil {
			if fe, ok := nextErr.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		latency := time.Since(startTime)
		route := c.Route().Path

		if m.enabled {
			prometheus.HTTPRequestTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
			prometheus.HTTPRequestLatency.WithLabelValues(c.Method(), route).Observe(float64(latency.Milliseconds()))
		}

		fields := logrus.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"ip":         utils.ExtractIP(c),
		}
		if ua := utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage)); ua != nil {
			fields["device"] = ua.Device
			fields["os"] = ua.OS
			fields["browser"] = ua.Browser
		}
		entry := m.logger.WithFields(fields)
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Debug("request served")
		}
		return nextErr
	}
}
