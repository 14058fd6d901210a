package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusHandlers(t *testing.T) {
	logger := logrus.New()
	cfg := &config.Config{App: config.AppConfig{Name: "Skyent API", LogLevel: "DEBUG"}}

	app := fiber.New()
	app.Get("/health", NewGetHealthHandler(logger, cfg).Handle)
	app.Get("/version", NewGetVersionHandler(logger).Handle)
	app.Get("/moderation", NewGetModuleStatusHandler(logger, "moderation", func() fiber.Map {
		return fiber.Map{"providers": map[string]bool{"openai": false, "local": true}}
	}).Handle)
	app.Get("/generation", NewGetModuleStatusHandler(logger, "generation", nil).Handle)

	decode := func(path string) map[string]interface{} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	health := decode("/health")
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "Skyent API", health["app_name"])
	assert.Equal(t, "DEBUG", health["log_level"])

	ver := decode("/version")
	assert.Equal(t, "Skyent API", ver["app_name"])
	assert.Contains(t, ver, "uptime_seconds")
	assert.NotEmpty(t, health["version"])

	mod := decode("/moderation")
	assert.Equal(t, "moderation", mod["module"])
	assert.Equal(t, map[string]interface{}{"openai": false, "local": true}, mod["providers"])

	gen := decode("/generation")
	assert.Equal(t, "ok", gen["status"])
	assert.NotContains(t, gen, "providers")
}
