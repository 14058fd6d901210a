package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// StatusDetails adds module specific fields to a status reply.
type StatusDetails func() fiber.Map

type getModuleStatusHandler struct {
	logger  *logrus.Logger
	module  string
	details StatusDetails
}

func NewGetModuleStatusHandler(logger *logrus.Logger, module string, details StatusDetails) Handler {
	return &getModuleStatusHandler{
		logger:  logger,
		module:  module,
		details: details,
	}
}

// Handle @Summary Module status
// @Description Reports that a module is mounted, with module specific details
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]interface{} "Module status"
// @Router /api/v1/moderation [get]
// @Router /api/v1/analysis/db [get]
// @Router /api/v1/generation [get]
// @Router /api/v1/publication [get]
// @Router /api/v1/websearch [get]
func (h *getModuleStatusHandler) Handle(c *fiber.Ctx) error {
	body := fiber.Map{"module": h.module, "status": "ok"}
	if h.details != nil {
		for k, v := range h.details() {
			body[k] = v
		}
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
