package http

import (
	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getHealthHandler struct {
	logger *logrus.Logger
	cfg    *config.Config
}

func NewGetHealthHandler(logger *logrus.Logger, cfg *config.Config) Handler {
	return &getHealthHandler{
		logger: logger,
		cfg:    cfg,
	}
}

// Handle @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /health [get]
func (h *getHealthHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"app_name":  h.cfg.App.Name,
		"version":   version.Version,
		"log_level": h.cfg.App.LogLevel,
	})
}
