// ABOUTME: Public types for the gist search library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package gistsearch

import (
	"gist-search-api/core/domain"
)

// Result is a completed search
type Result struct {
	Username string        `json:"username"`
	Pattern  string        `json:"pattern"`
	Matches  []string      `json:"matches"`
	Skipped  []SkippedGist `json:"skipped"`
}

// SkippedGist is a gist left out because none of its files could be fetched
type SkippedGist struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

func domainResultToPublic(r *domain.SearchResult) *Result {
	result := &Result{
		Username: r.Username,
		Pattern:  r.Pattern,
		Matches:  make([]string, len(r.Matches)),
		Skipped:  make([]SkippedGist, len(r.Skipped)),
	}
	copy(result.Matches, r.Matches)
	for i, s := range r.Skipped {
		result.Skipped[i] = SkippedGist{ID: s.ID, Reason: s.Reason}
	}
	return result
}
