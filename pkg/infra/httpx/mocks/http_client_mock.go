package mocks

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// MockHTTPClient satisfies httpx.Client.
type MockHTTPClient struct {
	mock.Mock
}

// NewMockHTTPClient asserts the recorded expectations when the test ends.
func NewMockHTTPClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHTTPClient {
	m := &MockHTTPClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if fn, ok := args.Get(0).(func(*http.Request) (*http.Response, error)); ok {
		return fn(req)
	}
	resp, ok := args.Get(0).(*http.Response)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("mock returned %T, want *http.Response", args.Get(0))
	}
	return resp, args.Error(1)
}

// ExpectRequest matches a call by method and full URL.
func (m *MockHTTPClient) ExpectRequest(method, url string) *mock.Call {
	return m.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.Method == method && r.URL.String() == url
	}))
}
