package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	handlers "github.com/Setharkk/Skyent-dev/pkg/handlers/http"
	wsHandlers "github.com/Setharkk/Skyent-dev/pkg/handlers/websocket"
	"github.com/Setharkk/Skyent-dev/pkg/server/middleware"
	"github.com/Setharkk/Skyent-dev/pkg/server/router"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedHandler string

func (h namedHandler) Handle(c *fiber.Ctx) error {
	return c.SendString(string(h))
}

type noopWSHandler struct{}

func (noopWSHandler) Handle(*websocket.Conn) {}

type otherTransport struct{}

func (o *otherTransport) GetTransport() handlers.HandlerTransport { return o }

func newTransport() *handlers.HandlerTransportDTO {
	return &handlers.HandlerTransportDTO{
		GetHealthHandler:               namedHandler("health"),
		GetVersionHandler:              namedHandler("version"),
		GetModerationStatusHandler:     namedHandler("moderation-status"),
		ModerateHandler:                namedHandler("moderate"),
		ModerateTextHandler:            namedHandler("moderate-text"),
		ModerateImageHandler:           namedHandler("moderate-image"),
		ModerateAudioHandler:           namedHandler("moderate-audio"),
		ModerateBatchHandler:           namedHandler("moderate-batch"),
		GetModerationHandler:           namedHandler("get-moderation"),
		GetAnalysisStatusHandler:       namedHandler("analysis-status"),
		AnalyseCampaignHandler:         namedHandler("analyse-campaign"),
		AnalyzeContentHandler:          namedHandler("analyze-content"),
		GetAnalysisHandler:             namedHandler("get-analysis"),
		ListAnalysesHandler:            namedHandler("list-analyses"),
		GetGenerationStatusHandler:     namedHandler("generation-status"),
		GenerateContentHandler:         namedHandler("generate"),
		GetContentHandler:              namedHandler("get-content"),
		ListContentsHandler:            namedHandler("list-contents"),
		GetPublicationStatusHandler:    namedHandler("publication-status"),
		PublishHandler:                 namedHandler("publish"),
		PublishDirectHandler:           namedHandler("publish-direct"),
		GetPublicationHandler:          namedHandler("get-publication"),
		ListContentPublicationsHandler: namedHandler("list-publications"),
		GetWebSearchStatusHandler:      namedHandler("websearch-status"),
		WebSearchHandler:               namedHandler("websearch"),
	}
}

func TestAPIRouter_Routes(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Port: 8000}}
	app := fiber.New()
	r := router.NewAPIRouter(
		middleware.NewChain(),
		newTransport(),
		&wsHandlers.HandlerTransportDTO{ModerationHandler: noopWSHandler{}},
		cfg,
	)
	require.NoError(t, r.BuildRoutes(app))

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/health", "health"},
		{http.MethodGet, "/version", "version"},
		{http.MethodGet, "/api/v1/moderation", "moderation-status"},
		{http.MethodPost, "/api/v1/moderation/moderate", "moderate"},
		{http.MethodPost, "/api/v1/moderation/moderate/batch", "moderate-batch"},
		{http.MethodPost, "/api/v1/moderation/moderate/audio", "moderate-audio"},
		{http.MethodGet, "/api/v1/moderation/7b4c3c44-5d0e-4d54-a0b4-5f0a0e3b5e61", "get-moderation"},
		{http.MethodPost, "/api/v1/analyse_campaign", "analyse-campaign"},
		{http.MethodGet, "/api/v1/analysis/db", "analysis-status"},
		{http.MethodPost, "/api/v1/analysis/db/analyze", "analyze-content"},
		{http.MethodGet, "/api/v1/analysis/db/results", "list-analyses"},
		{http.MethodGet, "/api/v1/analysis/db/results/abc", "get-analysis"},
		{http.MethodPost, "/api/v1/generation/generate", "generate"},
		{http.MethodGet, "/api/v1/generation/contents", "list-contents"},
		{http.MethodGet, "/api/v1/generation/contents/abc", "get-content"},
		{http.MethodPost, "/api/v1/publication/publish", "publish"},
		{http.MethodPost, "/api/v1/publication/publish/direct", "publish-direct"},
		{http.MethodGet, "/api/v1/publication/content/abc", "list-publications"},
		{http.MethodGet, "/api/v1/publication/abc", "get-publication"},
		{http.MethodGet, "/api/v1/websearch/search", "websearch"},
		{http.MethodPost, "/api/v1/websearch/search", "websearch"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestAPIRouter_InvalidTransport(t *testing.T) {
	r := router.NewAPIRouter(
		middleware.NewChain(),
		&otherTransport{},
		&wsHandlers.HandlerTransportDTO{},
		&config.Config{},
	)
	assert.ErrorIs(t, r.BuildRoutes(fiber.New()), router.ErrInvalidHandlerTransport)
}

type failingRouter struct{}

func (failingRouter) BuildRoutes(*fiber.App) error { return router.ErrInvalidHandlerTransport }

func TestBuildAll(t *testing.T) {
	app := fiber.New()
	ok := router.NewAPIRouter(
		middleware.NewChain(),
		newTransport(),
		&wsHandlers.HandlerTransportDTO{ModerationHandler: noopWSHandler{}},
		&config.Config{},
	)
	require.NoError(t, router.BuildAll(app, ok))

	err := router.BuildAll(fiber.New(), failingRouter{}, failingRouter{})
	require.ErrorIs(t, err, router.ErrInvalidHandlerTransport)
	assert.Contains(t, err.Error(), "router 1")
}
