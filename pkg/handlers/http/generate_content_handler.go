package http

import (
	"github.com/Setharkk/Skyent-dev/pkg/app/generation"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type generateContentHandler struct {
	logger  *logrus.Logger
	service generation.Service
}

func NewGenerateContentHandler(logger *logrus.Logger, service generation.Service) Handler {
	return &generateContentHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Generate marketing content
// @Description Generates content with the first configured LLM provider, falling back along the configured order
// @Tags Generation
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param request body request.GenerateContentRequest true "Generation parameters"
// @Success 201 {object} content.GeneratedContent "Generated content"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 502 {object} map[string]interface{} "Every provider failed"
// @Router /api/v1/generation/generate [post]
func (h *generateContentHandler) Handle(c *fiber.Ctx) error {
	var req request.GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse generation request")
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	params := &generation.Parameters{
		ContentType:       generation.ContentType(req.ContentType),
		Prompt:            req.Prompt,
		Keywords:          req.Keywords,
		Tone:              generation.Tone(req.Tone),
		MaxLength:         req.MaxLength,
		Language:          req.Language,
		IncludeHashtags:   req.IncludeHashtags,
		IncludeEmojis:     req.IncludeEmojis,
		TargetAudience:    req.TargetAudience,
		References:        req.References,
		AdditionalContext: req.AdditionalContext,
		Moderate:          req.Moderate,
	}

	generated, err := h.service.Generate(c.Context(), params)
	if err != nil {
		h.logger.WithError(err).WithField("content_type", req.ContentType).Error("content generation failed")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusCreated).JSON(generated)
}
