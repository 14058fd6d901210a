package http

import (
	appPublication "github.com/Setharkk/Skyent-dev/pkg/app/publication"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type publishDirectHandler struct {
	logger  *logrus.Logger
	service appPublication.Service
}

func NewPublishDirectHandler(logger *logrus.Logger, service appPublication.Service) Handler {
	return &publishDirectHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Publish raw content
// @Tags Publication
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param request body request.DirectPublishRequest true "Direct publication request"
// @Success 201 {object} publication.Publication "Publication"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/publication/publish/direct [post]
func (h *publishDirectHandler) Handle(c *fiber.Ctx) error {
	var req request.DirectPublishRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse direct publish request")
		return badRequest(c, "invalid request body")
	}
	scheduleTime, err := req.Validate()
	if err != nil {
		return badRequest(c, err.Error())
	}

	p, err := h.service.PublishDirect(c.Context(), &appPublication.DirectPublishRequest{
		Content:           req.Content,
		Platform:          req.Platform,
		Title:             req.Title,
		MediaURLs:         req.MediaURLs,
		ScheduleTime:      scheduleTime,
		AdditionalOptions: req.AdditionalOptions,
	})
	if err != nil {
		h.logger.WithError(err).WithField("platform", req.Platform).Error("direct publication failed")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}
