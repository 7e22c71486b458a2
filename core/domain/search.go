// ABOUTME: Search domain models for gist pattern searches
// ABOUTME: Defines the request, result and skip records produced by the search pipeline

package domain

const (
	// StatusSuccess marks a search that ran to completion
	StatusSuccess = "success"

	// StatusFailed marks a search rejected by validation or by an upstream failure
	StatusFailed = "failed"
)

// SearchRequest is a single user/pattern search
type SearchRequest struct {
	// Username is the GitHub account whose public gists are searched
	Username string

	// Pattern is the regular expression applied to each gist's raw content
	Pattern string
}

// SkippedGist records a gist that was left out of the results because
// none of its content could be retrieved
type SkippedGist struct {
	// ID is the gist identifier
	ID string

	// Reason describes why the gist was skipped
	Reason string
}

// SearchResult is the outcome of one search request
type SearchResult struct {
	// Status is StatusSuccess or StatusFailed
	Status string

	// Username echoes the searched account
	Username string

	// Pattern echoes the searched expression
	Pattern string

	// Matches holds the public URLs of matching gists in metadata order
	Matches []string

	// Message explains a failed search
	Message string

	// Skipped lists gists whose content could not be fetched
	Skipped []SkippedGist

	// Err is the typed cause of a failed search, nil on success
	Err error
}

// Failed reports whether the search did not complete
func (r *SearchResult) Failed() bool {
	return r.Status == StatusFailed
}

// NewFailedResult builds a failed result for a request that never reached upstream
func NewFailedResult(message string) *SearchResult {
	return &SearchResult{
		Status:  StatusFailed,
		Message: message,
	}
}
