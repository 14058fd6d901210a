package http

import (
	"github.com/Setharkk/Skyent-dev/pkg/app/generation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getContentHandler struct {
	logger  *logrus.Logger
	service generation.Service
}

func NewGetContentHandler(logger *logrus.Logger, service generation.Service) Handler {
	return &getContentHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Retrieve a generated content
// @Tags Generation
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {object} content.GeneratedContent "Generated content"
// @Failure 404 {object} map[string]interface{} "Content not found"
// @Router /api/v1/generation/contents/{content_id} [get]
func (h *getContentHandler) Handle(c *fiber.Ctx) error {
	contentID := c.Params("content_id")
	id, err := uuid.Parse(contentID)
	if err != nil {
		return badRequest(c, "invalid content_id")
	}

	generated, err := h.service.GetContent(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("content_id", contentID).Error("failed to get content")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(generated)
}
