package http

import (
	appAnalysis "github.com/Setharkk/Skyent-dev/pkg/app/analysis"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeContentHandler struct {
	logger  *logrus.Logger
	service appAnalysis.Service
}

func NewAnalyzeContentHandler(logger *logrus.Logger, service appAnalysis.Service) Handler {
	return &analyzeContentHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Analyse and store a content
// @Description Keywords, summary and sentiment are stored; identical content reuses its analysis
// @Tags Analysis DB
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param request body request.ContentAnalysisRequest true "Content to analyse"
// @Success 200 {object} response.AnalysisOutput "Stored analysis"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/analysis/db/analyze [post]
func (h *analyzeContentHandler) Handle(c *fiber.Ctx) error {
	var req request.ContentAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse content analysis request")
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.service.AnalyzeContent(c.Context(), &appAnalysis.ContentRequest{
		Content:          req.Content,
		AnalyzeSentiment: request.BoolOr(req.AnalyzeSentiment, true),
		ExtractKeywords:  request.BoolOr(req.ExtractKeywords, true),
		CreateSummary:    request.BoolOr(req.CreateSummary, true),
	})
	if err != nil {
		h.logger.WithError(err).Error("content analysis failed")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewAnalysisOutput(result))
}
