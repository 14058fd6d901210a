package httpx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

type CircuitBreaker interface {
	Execute(fn func() error) error
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *circuitBreakerWrapper) Execute(fn func() error) error {
	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
	}
	return nil
}

type breakerClient struct {
	inner   Client
	breaker CircuitBreaker
}

// WithCircuitBreaker guards an upstream API. Transport errors and 5xx
// responses count as failures; an open breaker fails fast with
// gobreaker.ErrOpenState.
func WithCircuitBreaker(inner Client, name string, timeout time.Duration, maxFailures uint32) Client {
	return &breakerClient{
		inner:   inner,
		breaker: NewCircuitBreaker(name, timeout, maxFailures),
	}
}

func (b *breakerClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	err := b.breaker.Execute(func() error {
		r, err := b.inner.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			return &StatusError{StatusCode: r.StatusCode, Body: body}
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// NewResponse builds an in-memory response, used by fakes and tests.
func NewResponse(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}
