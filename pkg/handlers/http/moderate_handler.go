package http

import (
	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateHandler struct {
	logger  *logrus.Logger
	service appModeration.Service
}

func NewModerateHandler(logger *logrus.Logger, service appModeration.Service) Handler {
	return &moderateHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Moderate content
// @Description Classifies one or more texts with the requested moderation provider
// @Tags Moderation
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param request body request.ModerationRequest true "Moderation request"
// @Success 200 {object} moderation.Result "Moderation result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 503 {object} map[string]interface{} "No moderation provider available"
// @Router /api/v1/moderation/moderate [post]
func (h *moderateHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse moderation request")
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	modReq, err := toModerationRequest(req.Content, req.ContentType, req.ModerationType, req.IncludeOriginalResponse)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}
	modReq.Providers = req.Providers

	result, err := h.service.Moderate(c.Context(), modReq)
	if err != nil {
		h.logger.WithError(err).WithField("moderation_type", modReq.ModerationType).Error("moderation failed")
		return respondError(c, err, fiber.StatusBadGateway)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func toModerationRequest(content []string, contentType, moderationType string, includeOriginal bool) (*appModeration.Request, error) {
	ct, err := appModeration.ParseContentType(contentType)
	if err != nil {
		return nil, err
	}
	mt, err := appModeration.ParseType(moderationType)
	if err != nil {
		return nil, err
	}
	return &appModeration.Request{
		Content:                 content,
		ContentType:             ct,
		ModerationType:          mt,
		IncludeOriginalResponse: includeOriginal,
	}, nil
}
