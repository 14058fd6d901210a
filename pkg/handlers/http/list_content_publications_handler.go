package http

import (
	appPublication "github.com/Setharkk/Skyent-dev/pkg/app/publication"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type listContentPublicationsHandler struct {
	logger  *logrus.Logger
	service appPublication.Service
}

func NewListContentPublicationsHandler(logger *logrus.Logger, service appPublication.Service) Handler {
	return &listContentPublicationsHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List the publications of a generated content
// @Tags Publication
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {array} publication.Publication "Publications, newest first"
// @Router /api/v1/publication/content/{content_id} [get]
func (h *listContentPublicationsHandler) Handle(c *fiber.Ctx) error {
	contentID := c.Params("content_id")
	id, err := uuid.Parse(contentID)
	if err != nil {
		return badRequest(c, "invalid content_id")
	}

	items, err := h.service.ListByContent(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("content_id", contentID).Error("failed to list publications")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}
