package http

import (
	appPublication "github.com/Setharkk/Skyent-dev/pkg/app/publication"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getPublicationHandler struct {
	logger  *logrus.Logger
	service appPublication.Service
}

func NewGetPublicationHandler(logger *logrus.Logger, service appPublication.Service) Handler {
	return &getPublicationHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Retrieve a publication
// @Tags Publication
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param publication_id path string true "Publication ID"
// @Success 200 {object} publication.Publication "Publication"
// @Failure 404 {object} map[string]interface{} "Publication not found"
// @Router /api/v1/publication/{publication_id} [get]
func (h *getPublicationHandler) Handle(c *fiber.Ctx) error {
	publicationID := c.Params("publication_id")
	id, err := uuid.Parse(publicationID)
	if err != nil {
		return badRequest(c, "invalid publication_id")
	}

	p, err := h.service.Get(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("publication_id", publicationID).Error("failed to get publication")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(p)
}
