package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	moderationMocks "github.com/Setharkk/Skyent-dev/pkg/app/moderation/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/moderation_result"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newModerationApp(svc appModeration.Service) *fiber.App {
	logger := logrus.New()
	app := fiber.New()
	app.Post("/moderate", NewModerateHandler(logger, svc).Handle)
	app.Post("/moderate/text", NewModerateContentHandler(logger, svc, appModeration.ContentText).Handle)
	app.Post("/moderate/image", NewModerateContentHandler(logger, svc, appModeration.ContentImage).Handle)
	app.Post("/moderate/batch", NewModerateBatchHandler(logger, svc).Handle)
	app.Get("/:moderation_id", NewGetModerationHandler(logger, svc).Handle)
	return app
}

func flaggedResult(provider string) *appModeration.Result {
	return &appModeration.Result{
		ModerationID:   uuid.New(),
		Flagged:        true,
		Categories:     map[string]bool{"hate": true},
		CategoryScores: map[string]float64{"hate": 0.8},
		Provider:       provider,
		ContentType:    appModeration.ContentText,
	}
}

func TestModerateHandler_Success(t *testing.T) {
	svc := moderationMocks.NewService(t)
	svc.EXPECT().Moderate(mock.Anything, mock.MatchedBy(func(r *appModeration.Request) bool {
		return r.ModerationType == appModeration.TypeLocal &&
			r.ContentType == appModeration.ContentText &&
			assert.ObjectsAreEqual([]string{"texte haineux"}, r.Content)
	})).Return(flaggedResult("local"), nil).Once()

	body := `{"content":"texte haineux","moderation_type":"detoxify"}`
	req := httptest.NewRequest("POST", "/moderate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newModerationApp(svc).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out appModeration.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Flagged)
	assert.Equal(t, "local", out.Provider)
}

func TestModerateHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"empty content", `{"content":"  "}`, nil, fiber.StatusBadRequest},
		{"invalid json", `{"content":`, nil, fiber.StatusBadRequest},
		{"unknown moderation type", `{"content":"x","moderation_type":"magic"}`, nil, fiber.StatusBadRequest},
		{"no provider", `{"content":"x"}`, moderation.ErrNoProviderAvailable, fiber.StatusServiceUnavailable},
		{"provider failure", `{"content":"x"}`, errors.New("upstream 500"), fiber.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := moderationMocks.NewService(t)
			if tt.serviceErr != nil {
				svc.EXPECT().Moderate(mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()
			}
			req := httptest.NewRequest("POST", "/moderate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := newModerationApp(svc).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(raw), `"error"`)
		})
	}
}

func TestModerateContentHandler_QueryAndBody(t *testing.T) {
	svc := moderationMocks.NewService(t)
	svc.EXPECT().Moderate(mock.Anything, mock.MatchedBy(func(r *appModeration.Request) bool {
		return r.ContentType == appModeration.ContentText && r.Content[0] == "bonjour" && r.IncludeOriginalResponse
	})).Return(flaggedResult("combined"), nil).Once()
	svc.EXPECT().Moderate(mock.Anything, mock.MatchedBy(func(r *appModeration.Request) bool {
		return r.ContentType == appModeration.ContentImage && r.Content[0] == "une image violente"
	})).Return(flaggedResult("combined"), nil).Once()

	app := newModerationApp(svc)

	req := httptest.NewRequest("POST", "/moderate/text?content=bonjour&include_original_response=true", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "/moderate/image", bytes.NewBufferString(`{"content":"une image violente"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "/moderate/text", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestModerateBatchHandler(t *testing.T) {
	svc := moderationMocks.NewService(t)
	svc.EXPECT().ModerateBatch(mock.Anything, []string{"a", "b"}, mock.MatchedBy(func(r appModeration.Request) bool {
		return r.ModerationType == appModeration.TypeOpenAI && r.IncludeOriginalResponse
	})).Return([]*appModeration.Result{flaggedResult("openai"), {Flagged: true, Provider: "error-openai"}}).Once()

	app := newModerationApp(svc)
	req := httptest.NewRequest("POST", "/moderate/batch?moderation_type=openai&include_original_response=true",
		bytes.NewBufferString(`["a","b"]`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []appModeration.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 2)
	assert.Equal(t, "error-openai", out[1].Provider)

	req = httptest.NewRequest("POST", "/moderate/batch", bytes.NewBufferString(`[]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetModerationHandler(t *testing.T) {
	svc := moderationMocks.NewService(t)
	found := flaggedResult("openai")
	missing := uuid.New()
	svc.EXPECT().Get(mock.Anything, found.ModerationID).Return(found, nil).Once()
	svc.EXPECT().Get(mock.Anything, missing).
		Return(nil, domain.NewNotFoundError(moderation_result.EntityName, missing)).Once()

	app := newModerationApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/"+found.ModerationID.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/"+missing.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
