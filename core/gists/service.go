// ABOUTME: Gist service talks to the GitHub gist API through the injected HTTP client
// ABOUTME: Lists a user's public gists and fetches raw file content

package gists

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"gist-search-api/core/domain"
	coreerrors "gist-search-api/core/errors"
	"gist-search-api/core/interfaces"
)

const (
	// DefaultAPIBaseURL is the public GitHub REST endpoint
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultMaxContentBytes bounds how much of one raw file is read
	DefaultMaxContentBytes int64 = 10 << 20

	apiName = "github"
)

// Options configures the gist service
type Options struct {
	// APIBaseURL overrides DefaultAPIBaseURL
	APIBaseURL string

	// MaxContentBytes overrides DefaultMaxContentBytes
	MaxContentBytes int64
}

// Service implements interfaces.GistFetcher
type Service struct {
	deps            interfaces.Dependencies
	apiBaseURL      string
	maxContentBytes int64
}

// NewService creates a new gist service instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	base := opts.APIBaseURL
	if base == "" {
		base = DefaultAPIBaseURL
	}
	maxBytes := opts.MaxContentBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxContentBytes
	}
	return &Service{
		deps:            deps,
		apiBaseURL:      strings.TrimRight(base, "/"),
		maxContentBytes: maxBytes,
	}
}

// ListUserGists returns the public gists of username as listed by
// GET /users/{username}/gists. Only the first page is requested.
func (s *Service) ListUserGists(ctx context.Context, username string) ([]domain.Gist, error) {
	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	listURL := fmt.Sprintf("%s/users/%s/gists", s.apiBaseURL, url.PathEscape(username))

	resp, err := s.deps.HTTPClient.Get(ctx, listURL, map[string]string{
		"Accept": "application/vnd.github+json",
	})
	if err != nil {
		s.observe("metadata", "error")
		return nil, &coreerrors.ExternalAPIError{
			Message: fmt.Sprintf("failed to list gists: %v", err),
			API:     apiName,
		}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.observe("metadata", "error")
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("failed to read gist listing: %v", err),
			API:        apiName,
		}
	}

	if resp.StatusCode() != http.StatusOK {
		s.observe("metadata", "error")
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    upstreamMessage(resp.StatusCode(), body),
			API:        apiName,
		}
	}

	var gists []domain.Gist
	if err := json.Unmarshal(body, &gists); err != nil {
		s.observe("metadata", "error")
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("failed to parse gist listing: %v", err),
			API:        apiName,
		}
	}

	s.observe("metadata", "ok")
	if gists == nil {
		gists = []domain.Gist{}
	}
	return gists, nil
}

// FetchRawContent returns the text of one raw file URL. Bodies larger than
// the configured limit are truncated.
func (s *Service) FetchRawContent(ctx context.Context, rawURL string) (string, error) {
	if s.deps.HTTPClient == nil {
		return "", fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, rawURL, nil)
	if err != nil {
		s.observe("content", "error")
		return "", &coreerrors.ExternalAPIError{
			Message: fmt.Sprintf("failed to fetch raw content: %v", err),
			API:     apiName,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		s.observe("content", "error")
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("raw content returned status %d", resp.StatusCode()),
			API:        apiName,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), s.maxContentBytes))
	if err != nil {
		s.observe("content", "error")
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("failed to read raw content: %v", err),
			API:        apiName,
		}
	}

	s.observe("content", "ok")
	return string(body), nil
}

func (s *Service) observe(kind, outcome string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveUpstream(kind, outcome)
	}
}

// upstreamMessage extracts the "message" field GitHub attaches to error
// responses, falling back to a generic status description
func upstreamMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("upstream returned status %d", status)
}
