package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"gist-search-api/core/domain"
)

// mockGistFetcher is a mock implementation of the GistFetcher interface
type mockGistFetcher struct {
	mu        sync.Mutex
	listCalls int
	rawCalls  map[string]int

	listFunc func(ctx context.Context, username string) ([]domain.Gist, error)
	rawFunc  func(ctx context.Context, rawURL string) (string, error)
}

func (m *mockGistFetcher) ListUserGists(ctx context.Context, username string) ([]domain.Gist, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listFunc != nil {
		return m.listFunc(ctx, username)
	}
	return []domain.Gist{}, nil
}

func (m *mockGistFetcher) FetchRawContent(ctx context.Context, rawURL string) (string, error) {
	m.mu.Lock()
	if m.rawCalls == nil {
		m.rawCalls = make(map[string]int)
	}
	m.rawCalls[rawURL]++
	m.mu.Unlock()
	if m.rawFunc != nil {
		return m.rawFunc(ctx, rawURL)
	}
	return "", errors.New("not found")
}

func (m *mockGistFetcher) totalRawCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.rawCalls {
		total += n
	}
	return total
}

// contentFetcher serves raw content from a fixed map; unknown URLs fail
func contentFetcher(contents map[string]string) func(ctx context.Context, rawURL string) (string, error) {
	return func(ctx context.Context, rawURL string) (string, error) {
		if body, ok := contents[rawURL]; ok {
			return body, nil
		}
		return "", errors.New("raw content returned status 404")
	}
}

// singleFileGist builds a gist with one file whose raw URL is derived from the id
func singleFileGist(id string) domain.Gist {
	return domain.Gist{
		ID: id,
		Files: map[string]domain.GistFile{
			id + ".txt": {Filename: id + ".txt", RawURL: rawURL(id, id+".txt")},
		},
	}
}

func rawURL(id, filename string) string {
	return "https://gist.githubusercontent.com/octocat/" + id + "/raw/" + filename
}

// mockLogger records log entries and is safe for concurrent use
type mockLogger struct {
	mu   sync.Mutex
	logs []logEntry
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, logEntry{Level: level, Message: msg, Fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// mockMetrics records observed search statuses
type mockMetrics struct {
	mu       sync.Mutex
	searches map[string]int
}

func (m *mockMetrics) ObserveSearch(status string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.searches == nil {
		m.searches = make(map[string]int)
	}
	m.searches[status]++
}

func (m *mockMetrics) ObserveUpstream(kind, outcome string) {}

func (m *mockMetrics) ObserveCache(result string) {}
