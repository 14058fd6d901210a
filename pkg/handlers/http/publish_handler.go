package http

import (
	appPublication "github.com/Setharkk/Skyent-dev/pkg/app/publication"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type publishHandler struct {
	logger  *logrus.Logger
	service appPublication.Service
}

func NewPublishHandler(logger *logrus.Logger, service appPublication.Service) Handler {
	return &publishHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Publish a generated content
// @Description Publishes now, or schedules when schedule_time is in the future
// @Tags Publication
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param request body request.PublishRequest true "Publication request"
// @Success 201 {object} publication.Publication "Publication"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Content not found"
// @Router /api/v1/publication/publish [post]
func (h *publishHandler) Handle(c *fiber.Ctx) error {
	var req request.PublishRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse publish request")
		return badRequest(c, "invalid request body")
	}
	contentID, scheduleTime, err := req.Validate()
	if err != nil {
		return badRequest(c, err.Error())
	}

	p, err := h.service.Publish(c.Context(), &appPublication.PublishRequest{
		ContentID:         contentID,
		Platform:          req.Platform,
		ScheduleTime:      scheduleTime,
		AdditionalOptions: req.AdditionalOptions,
	})
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"content_id": req.ContentID,
			"platform":   req.Platform,
		}).Error("publication failed")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}
