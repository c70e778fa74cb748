package testutil

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/invocli/invocli/internal/httpclient"
)

// MockHTTPClient implements a mock HTTP client for testing
type MockHTTPClient struct {
	mu     sync.RWMutex
	routes map[string]MockResponse
	calls  int
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		routes: make(map[string]MockResponse),
	}
}

// RegisterResponse registers a mock response for every URL ending with route
func (m *MockHTTPClient) RegisterResponse(route string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[route] = resp
}

// Send implements the httpclient.Client interface
func (m *MockHTTPClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	for route, resp := range m.routes {
		if !strings.HasSuffix(req.URL, route) {
			continue
		}
		if resp.StatusCode >= 400 {
			return nil, httpclient.NewError(resp.StatusCode, resp.Body)
		}
		return &httpclient.Response{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Headers:    resp.Headers,
		}, nil
	}

	return nil, httpclient.NewError(http.StatusNotFound, []byte("Not Found"))
}

// Calls returns how many requests were sent
func (m *MockHTTPClient) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Clear removes all registered responses
func (m *MockHTTPClient) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = make(map[string]MockResponse)
	m.calls = 0
}
