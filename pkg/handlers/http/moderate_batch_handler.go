package http

import (
	"encoding/json"

	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateBatchHandler struct {
	logger  *logrus.Logger
	service appModeration.Service
}

func NewModerateBatchHandler(logger *logrus.Logger, service appModeration.Service) Handler {
	return &moderateBatchHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Moderate a batch of texts
// @Description Each text is moderated independently; a failed item is returned flagged with provider error-<type>
// @Tags Moderation
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param request body []string true "Texts to moderate, or {contents, moderation_type, include_original_response}"
// @Param moderation_type query string false "Moderation type"
// @Param include_original_response query bool false "Include raw provider output"
// @Success 200 {array} moderation.Result "One result per text"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/moderation/moderate/batch [post]
func (h *moderateBatchHandler) Handle(c *fiber.Ctx) error {
	req, err := parseBatchRequest(c.Body())
	if err != nil {
		h.logger.WithError(err).Error("failed to parse batch moderation request")
		return badRequest(c, "invalid request body")
	}
	if qt := c.Query("moderation_type"); qt != "" {
		req.ModerationType = qt
	}
	req.IncludeOriginalResponse = req.IncludeOriginalResponse || c.QueryBool("include_original_response", false)
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	modReq, err := toModerationRequest(nil, string(appModeration.ContentText), req.ModerationType, req.IncludeOriginalResponse)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	results := h.service.ModerateBatch(c.Context(), req.Contents, *modReq)
	return c.Status(fiber.StatusOK).JSON(results)
}

// parseBatchRequest accepts a bare JSON array or the object form.
func parseBatchRequest(body []byte) (*request.ModerationBatchRequest, error) {
	var contents []string
	if err := json.Unmarshal(body, &contents); err == nil {
		return &request.ModerationBatchRequest{Contents: contents}, nil
	}
	var req request.ModerationBatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
