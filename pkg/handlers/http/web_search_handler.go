package http

import (
	"github.com/Setharkk/Skyent-dev/pkg/handlers/http/request"
	"github.com/Setharkk/Skyent-dev/pkg/infra/websearch"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type webSearchHandler struct {
	logger   *logrus.Logger
	searcher websearch.Searcher
}

func NewWebSearchHandler(logger *logrus.Logger, searcher websearch.Searcher) Handler {
	return &webSearchHandler{
		logger:   logger,
		searcher: searcher,
	}
}

// Handle @Summary Search the web
// @Description GET takes q and n query parameters, POST a JSON body
// @Tags Web Search
// @Param Authorization header string false "Bearer token"
// @Accept json
// @Produce json
// @Param q query string false "Query (GET)"
// @Param n query int false "Result count (GET)"
// @Param request body request.WebSearchRequest false "Search request (POST)"
// @Success 200 {object} map[string]interface{} "Results"
// @Failure 400 {object} map[string]interface{} "Empty query"
// @Router /api/v1/websearch/search [get]
// @Router /api/v1/websearch/search [post]
func (h *webSearchHandler) Handle(c *fiber.Ctx) error {
	req := request.WebSearchRequest{
		Query:      c.Query("q"),
		MaxResults: c.QueryInt("n", websearch.DefaultResults),
	}
	if c.Method() == fiber.MethodPost {
		req.MaxResults = 0
		if err := c.BodyParser(&req); err != nil {
			h.logger.WithError(err).Error("failed to parse web search request")
			return badRequest(c, "invalid request body")
		}
		if req.MaxResults == 0 {
			req.MaxResults = websearch.DefaultResults
		}
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	results, err := h.searcher.Search(c.Context(), req.Query, req.MaxResults)
	if err != nil {
		h.logger.WithError(err).WithField("query", req.Query).Error("web search failed")
		return respondError(c, err, fiber.StatusBadGateway)
	}
	if results == nil {
		results = []websearch.Result{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": results})
}
