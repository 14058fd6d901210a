package http

import (
	"github.com/Setharkk/Skyent-dev/pkg/app/generation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listContentsHandler struct {
	logger  *logrus.Logger
	service generation.Service
}

func NewListContentsHandler(logger *logrus.Logger, service generation.Service) Handler {
	return &listContentsHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List generated contents, newest first
// @Tags Generation
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param offset query int false "Items to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} content.GeneratedContent "Contents"
// @Router /api/v1/generation/contents [get]
func (h *listContentsHandler) Handle(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", c.QueryInt("skip", 0))
	limit := c.QueryInt("limit", generation.DefaultListLimit)

	items, err := h.service.ListContents(c.Context(), offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list contents")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}
