package http

import (
	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getModerationHandler struct {
	logger  *logrus.Logger
	service appModeration.Service
}

func NewGetModerationHandler(logger *logrus.Logger, service appModeration.Service) Handler {
	return &getModerationHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Retrieve a moderation result by ID
// @Tags Moderation
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param moderation_id path string true "Moderation ID"
// @Success 200 {object} moderation.Result "Moderation result"
// @Failure 404 {object} map[string]interface{} "Moderation result not found"
// @Router /api/v1/moderation/{moderation_id} [get]
func (h *getModerationHandler) Handle(c *fiber.Ctx) error {
	moderationID := c.Params("moderation_id")
	id, err := uuid.Parse(moderationID)
	if err != nil {
		return badRequest(c, "invalid moderation_id")
	}

	result, err := h.service.Get(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("moderation_id", moderationID).Error("failed to get moderation result")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
