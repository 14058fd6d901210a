package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx/mocks"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostJSON(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.Method == http.MethodPost &&
			r.Header.Get("Content-Type") == "application/json" &&
			r.Header.Get("Authorization") == "Bearer k"
	})).Return(httpx.NewResponse(http.StatusOK, []byte(`{"answer":42}`)), nil).Once()

	var out struct {
		Answer int `json:"answer"`
	}
	raw, err := httpx.PostJSON(context.Background(), client, "https://api.example.com/x",
		map[string]string{"Authorization": "Bearer k"}, map[string]string{"q": "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Answer)
	assert.JSONEq(t, `{"answer":42}`, string(raw))
	client.AssertExpectations(t)
}

func TestPostJSON_StatusError(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).Return(httpx.NewResponse(http.StatusUnauthorized, []byte(`{"error":"bad key"}`)), nil)

	_, err := httpx.PostJSON(context.Background(), client, "https://api.example.com/x", nil, struct{}{}, nil)
	var se *httpx.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Contains(t, err.Error(), "bad key")
}

func TestWithCircuitBreaker_OpensAfterFailures(t *testing.T) {
	inner := new(mocks.MockHTTPClient)
	inner.On("Do", mock.Anything).Return(httpx.NewResponse(http.StatusBadGateway, []byte("down")), nil).Times(2)

	client := httpx.WithCircuitBreaker(inner, "tavily", time.Minute, 2)
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, "https://api.example.com", nil)
		_, err := client.Do(req)
		var se *httpx.StatusError
		require.ErrorAs(t, err, &se)
	}

	req, _ := http.NewRequest(http.MethodGet, "https://api.example.com", nil)
	_, err := client.Do(req)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Contains(t, err.Error(), "tavily")
	inner.AssertNumberOfCalls(t, "Do", 2)
}

func TestWithCircuitBreaker_PassesClientErrors(t *testing.T) {
	inner := new(mocks.MockHTTPClient)
	inner.On("Do", mock.Anything).Return(httpx.NewResponse(http.StatusNotFound, nil), nil)

	client := httpx.WithCircuitBreaker(inner, "openai", time.Minute, 1)
	req, _ := http.NewRequest(http.MethodGet, "https://api.example.com", nil)
	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
