package http

import (
	appAnalysis "github.com/Setharkk/Skyent-dev/pkg/app/analysis"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getAnalysisHandler struct {
	logger  *logrus.Logger
	service appAnalysis.Service
}

func NewGetAnalysisHandler(logger *logrus.Logger, service appAnalysis.Service) Handler {
	return &getAnalysisHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Retrieve a stored analysis
// @Tags Analysis DB
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} response.AnalysisOutput "Analysis"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /api/v1/analysis/db/results/{analysis_id} [get]
func (h *getAnalysisHandler) Handle(c *fiber.Ctx) error {
	analysisID := c.Params("analysis_id")
	id, err := uuid.Parse(analysisID)
	if err != nil {
		return badRequest(c, "invalid analysis_id")
	}

	result, err := h.service.GetAnalysis(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("analysis_id", analysisID).Error("failed to get analysis")
		return respondError(c, err, fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewAnalysisOutput(result))
}
