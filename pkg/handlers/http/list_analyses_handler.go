package http

import (
	appAnalysis "github.com/Setharkk/Skyent-dev/pkg/app/analysis"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listAnalysesHandler struct {
	logger  *logrus.Logger
	service appAnalysis.Service
}

func NewListAnalysesHandler(logger *logrus.Logger, service appAnalysis.Service) Handler {
	return &listAnalysesHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List stored analyses
// @Tags Analysis DB
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param skip query int false "Items to skip" default(0)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {array} response.AnalysisOutput "Analyses"
// @Router /api/v1/analysis/db/results [get]
func (h *listAnalysesHandler) Handle(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", appAnalysis.DefaultListLimit)

	items, err := h.service.ListAnalyses(c.Context(), skip, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list analyses")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewAnalysisOutputs(items))
}
