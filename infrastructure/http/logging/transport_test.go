package logging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"gist-search-api/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	mu   sync.Mutex
	logs []logEntry
}

func (l *recordingLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = append(l.logs, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.add("DEBUG", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.add("INFO", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.add("WARN", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.add("ERROR", msg, fields) }

type stubTransport struct {
	resp *http.Response
	err  error
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return s.resp, s.err
}

func TestRoundTripper_LogsWithInboundRequestID(t *testing.T) {
	logger := &recordingLogger{}
	rt := &RoundTripper{
		Transport: &stubTransport{resp: &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}},
		Logger:    logger,
	}

	req := httptest.NewRequest("GET", "https://api.github.com/users/octocat/gists", nil)
	req = req.WithContext(domain.WithRequestID(context.Background(), "req-42"))

	resp, err := rt.RoundTrip(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, logger.logs, 2)
	assert.Equal(t, "DEBUG", logger.logs[0].level)
	assert.Equal(t, "req-42", logger.logs[0].fields["request_id"])
	assert.Equal(t, http.StatusOK, logger.logs[1].fields["status"])
}

func TestRoundTripper_LogsFailures(t *testing.T) {
	logger := &recordingLogger{}
	rt := &RoundTripper{
		Transport: &stubTransport{err: errors.New("connection refused")},
		Logger:    logger,
	}

	_, err := rt.RoundTrip(httptest.NewRequest("GET", "https://api.github.com/", nil))

	assert.Error(t, err)
	require.Len(t, logger.logs, 2)
	assert.Equal(t, "ERROR", logger.logs[1].level)
	assert.Equal(t, "connection refused", logger.logs[1].fields["error"])
	assert.NotEmpty(t, logger.logs[1].fields["request_id"], "a request ID is generated when none is inbound")
}

func TestRoundTripper_DefaultsToHTTPDefaultTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := &http.Client{Transport: &RoundTripper{Logger: &recordingLogger{}}}
	resp, err := client.Get(server.URL)

	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
