// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"
	"time"

	"gist-search-api/core/domain"
)

// GistFetcher retrieves gist metadata and raw file content from the hosting API
type GistFetcher interface {
	// ListUserGists returns the public gists of username
	ListUserGists(ctx context.Context, username string) ([]domain.Gist, error)

	// FetchRawContent returns the body of one raw file URL
	FetchRawContent(ctx context.Context, rawURL string) (string, error)
}

// SearchService runs pattern searches over a user's gists
type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) *domain.SearchResult
}

// Metrics records operational counters. A nil Metrics disables recording.
type Metrics interface {
	// ObserveSearch records a finished search with its status and duration
	ObserveSearch(status string, duration time.Duration)

	// ObserveUpstream records an outbound call by kind ("metadata", "content")
	// and outcome ("ok", "error")
	ObserveUpstream(kind, outcome string)

	// ObserveCache records a response cache lookup ("hit", "miss", "error")
	ObserveCache(result string)
}
