package http

import (
	"strings"

	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateContentHandler struct {
	logger      *logrus.Logger
	service     appModeration.Service
	contentType appModeration.ContentType
}

// NewModerateContentHandler serves the text, image and audio shortcuts. Image and
// audio content is a description or transcript and is moderated as text.
func NewModerateContentHandler(
	logger *logrus.Logger,
	service appModeration.Service,
	contentType appModeration.ContentType,
) Handler {
	return &moderateContentHandler{
		logger:      logger,
		service:     service,
		contentType: contentType,
	}
}

// Handle @Summary Moderate a single text, image description or audio transcript
// @Tags Moderation
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param content query string false "Content to moderate (or JSON body with a content field)"
// @Param moderation_type query string false "openai, anthropic, local, azure, neuraltrust, bedrock or combined"
// @Param include_original_response query bool false "Include raw provider output"
// @Success 200 {object} moderation.Result "Moderation result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/moderation/moderate/text [post]
// @Router /api/v1/moderation/moderate/image [post]
// @Router /api/v1/moderation/moderate/audio [post]
func (h *moderateContentHandler) Handle(c *fiber.Ctx) error {
	content := c.Query("content")
	moderationType := c.Query("moderation_type")
	includeOriginal := c.QueryBool("include_original_response", false)

	if strings.TrimSpace(content) == "" && len(c.Body()) > 0 {
		var body request.ModerationRequest
		if err := c.BodyParser(&body); err != nil {
			h.logger.WithError(err).Error("failed to parse moderation body")
			return badRequest(c, "invalid request body")
		}
		content = strings.Join(body.Content, "\n")
		if moderationType == "" {
			moderationType = body.ModerationType
		}
		includeOriginal = includeOriginal || body.IncludeOriginalResponse
	}
	if strings.TrimSpace(content) == "" {
		return badRequest(c, request.ErrContentRequired.Error())
	}

	req, err := toModerationRequest([]string{content}, string(h.contentType), moderationType, includeOriginal)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	result, err := h.service.Moderate(c.Context(), req)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"content_type":    h.contentType,
			"moderation_type": req.ModerationType,
		}).Error("moderation failed")
		return respondError(c, err, fiber.StatusBadGateway)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
