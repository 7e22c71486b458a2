package gists

import (
	"context"
	"io"
	"strings"
	"time"

	"gist-search-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockMetrics counts upstream observations
type mockMetrics struct {
	upstream map[string]int
}

func (m *mockMetrics) ObserveSearch(status string, duration time.Duration) {}

func (m *mockMetrics) ObserveUpstream(kind, outcome string) {
	if m.upstream == nil {
		m.upstream = make(map[string]int)
	}
	m.upstream[kind+":"+outcome]++
}

func (m *mockMetrics) ObserveCache(result string) {}
