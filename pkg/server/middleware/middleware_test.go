package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/infra/auth/jwt"
	"github.com/Setharkk/Skyent-dev/pkg/server/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newAuthApp(t *testing.T, secret string) *fiber.App {
	t.Helper()
	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: secret})
	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(logrus.New(), manager, secret).Middleware())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/api/v1/analysis", func(c *fiber.Ctx) error {
		subject, _ := c.Locals(middleware.SubjectLocalsKey).(string)
		return c.SendString(subject)
	})
	return app
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	app := newAuthApp(t, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/analysis", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_Enabled(t *testing.T) {
	app := newAuthApp(t, testSecret)
	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: testSecret})
	token, err := manager.CreateToken("campaign-bot", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{"public route", "/health", "", fiber.StatusOK},
		{"missing header", "/api/v1/analysis", "", fiber.StatusUnauthorized},
		{"wrong scheme", "/api/v1/analysis", "Basic abc", fiber.StatusUnauthorized},
		{"empty token", "/api/v1/analysis", "Bearer ", fiber.StatusUnauthorized},
		{"invalid token", "/api/v1/analysis", "Bearer nope", fiber.StatusUnauthorized},
		{"valid token", "/api/v1/analysis", "Bearer " + token, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestPanicRecoverMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewPanicRecoverMiddleware(logrus.New()).Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestCORSMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewCORSMiddleware([]string{"https://app.skyent.dev"}).Middleware())
	app.Get("/api/v1/contents", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contents", nil)
	req.Header.Set("Origin", "https://app.skyent.dev")
	req.Header.Set("Access-Control-Request-Method", "GET")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://app.skyent.dev", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/contents", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetricsMiddleware_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewMetricsMiddleware(logrus.New(), true).Middleware())
	app.Get("/api/v1/contents/:content_id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/abc", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "req-42", resp.Header.Get("X-Request-ID"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/contents/def", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestWebsocketMiddleware_RequiresUpgrade(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{MaxWSConnections: 1}}
	app := fiber.New()
	app.Use(middleware.NewWebsocketMiddleware(cfg, logrus.New()).Middleware())
	app.Get("/api/v1/moderation/ws", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/moderation/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

type headerMiddleware string

func (h headerMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Append("X-Chain", string(h))
		return c.Next()
	}
}

func TestChain_AppliesInOrderAndSkipsNil(t *testing.T) {
	chain := middleware.NewChain(headerMiddleware("first"), nil, headerMiddleware("second"))
	assert.Equal(t, 2, chain.Len())

	app := fiber.New()
	chain.Apply(app)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "first, second", resp.Header.Get("X-Chain"))

	var empty *middleware.Chain
	assert.Zero(t, empty.Len())
	assert.NotPanics(t, func() { empty.Apply(app) })
}
