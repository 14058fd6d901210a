package http

import (
	appAnalysis "github.com/Setharkk/Skyent-dev/pkg/app/analysis"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyseCampaignHandler struct {
	logger  *logrus.Logger
	service appAnalysis.Service
}

func NewAnalyseCampaignHandler(logger *logrus.Logger, service appAnalysis.Service) Handler {
	return &analyseCampaignHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Analyse a campaign brief
// @Description Extracts keywords, summaries and optional web results for every brief item
// @Tags Campaign Analysis
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param request body request.CampaignBriefRequest true "Campaign brief"
// @Success 200 {object} analysis.CampaignAnalysis "Campaign analysis"
// @Failure 400 {object} map[string]interface{} "Invalid brief"
// @Router /api/v1/analyse_campaign [post]
func (h *analyseCampaignHandler) Handle(c *fiber.Ctx) error {
	var req request.CampaignBriefRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse campaign brief")
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	brief := &appAnalysis.Brief{
		CampaignName:          req.CampaignName,
		Description:           req.Description,
		KeywordsToExtract:     req.KeywordsToExtract,
		Summarize:             request.BoolOr(req.Summarize, true),
		WebSearch:             req.WebSearch,
		WebSearchResultsCount: req.WebSearchResultsCount,
	}
	for _, item := range req.BriefItems {
		brief.BriefItems = append(brief.BriefItems, appAnalysis.BriefItem{Title: item.Title, Content: item.Content})
	}

	result, err := h.service.AnalyzeCampaign(c.Context(), brief)
	if err != nil {
		h.logger.WithError(err).WithField("campaign", req.CampaignName).Error("campaign analysis failed")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
