// ABOUTME: Search service orchestrates gist pattern searches
// ABOUTME: Lists a user's gists, fetches their content and collects matching gist URLs in order

package search

import (
	"context"
	"time"

	"gist-search-api/core/domain"
	coreerrors "gist-search-api/core/errors"
	"gist-search-api/core/interfaces"
	"gist-search-api/core/pattern"
	"gist-search-api/core/workers"
)

// DefaultGistBaseURL is the host public gist pages live on
const DefaultGistBaseURL = "https://gist.github.com"

// Options configures the search service
type Options struct {
	// GistBaseURL overrides DefaultGistBaseURL for match URLs
	GistBaseURL string

	// Concurrency bounds parallel content fetches; 1 fetches sequentially
	Concurrency int
}

// SearchService runs pattern searches over a user's public gists
type SearchService struct {
	deps        interfaces.Dependencies
	gists       interfaces.GistFetcher
	pool        *workers.FetchPool
	gistBaseURL string
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, gists interfaces.GistFetcher, opts Options) *SearchService {
	base := opts.GistBaseURL
	if base == "" {
		base = DefaultGistBaseURL
	}
	return &SearchService{
		deps:        deps,
		gists:       gists,
		pool:        workers.NewFetchPool(workers.WorkerConfig{MaxWorkers: opts.Concurrency}),
		gistBaseURL: base,
	}
}

// gistOutcome is the per-gist result slot filled by the fetch pool
type gistOutcome struct {
	done    bool
	matched bool
	skipped bool
	reason  string
}

// validateRequest checks that both search fields are present
func (s *SearchService) validateRequest(req domain.SearchRequest) *coreerrors.ValidationError {
	if req.Username == "" {
		return &coreerrors.ValidationError{Field: "username", Message: "username is required"}
	}
	if req.Pattern == "" {
		return &coreerrors.ValidationError{Field: "pattern", Message: "pattern is required"}
	}
	return nil
}

// Search runs one search. It never returns nil and never panics on user
// input; every failure is reported through a failed result.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) *domain.SearchResult {
	start := time.Now()
	result := s.search(ctx, req)
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveSearch(result.Status, time.Since(start))
	}
	return result
}

func (s *SearchService) search(ctx context.Context, req domain.SearchRequest) *domain.SearchResult {
	if err := s.validateRequest(req); err != nil {
		result := domain.NewFailedResult(err.Message)
		result.Err = err
		return result
	}

	s.logInfo("Search started", map[string]interface{}{
		"username": req.Username,
		"pattern":  req.Pattern,
	})

	gists, err := s.gists.ListUserGists(ctx, req.Username)
	if err != nil {
		s.logError("Failed to list gists", map[string]interface{}{
			"username": req.Username,
			"error":    err.Error(),
		})
		return s.failed(req, err, coreerrors.UpstreamMessage(err))
	}

	matcher, err := pattern.Compile(req.Pattern)
	if err != nil {
		return s.failed(req, err, err.Error())
	}

	gists = domain.DedupeGists(gists)
	outcomes := make([]gistOutcome, len(gists))

	err = s.pool.Run(ctx, len(gists), func(ctx context.Context, i int) {
		outcomes[i] = s.matchGist(ctx, &gists[i], matcher)
		outcomes[i].done = true
	})
	if err != nil {
		// Gists never reached count as fetch failures, like cancelled fetches
		s.logWarn("Search cancelled before all gists were fetched", map[string]interface{}{
			"username": req.Username,
			"error":    err.Error(),
		})
		for i := range outcomes {
			if !outcomes[i].done {
				outcomes[i] = gistOutcome{done: true, skipped: true, reason: err.Error()}
			}
		}
	}

	result := &domain.SearchResult{
		Status:   domain.StatusSuccess,
		Username: req.Username,
		Pattern:  req.Pattern,
		Matches:  make([]string, 0),
		Skipped:  make([]domain.SkippedGist, 0),
	}
	for i, outcome := range outcomes {
		switch {
		case outcome.matched:
			result.Matches = append(result.Matches, gists[i].PublicURL(s.gistBaseURL, req.Username))
		case outcome.skipped:
			result.Skipped = append(result.Skipped, domain.SkippedGist{ID: gists[i].ID, Reason: outcome.reason})
		}
	}

	s.logInfo("Search completed", map[string]interface{}{
		"username": req.Username,
		"gists":    len(gists),
		"matches":  len(result.Matches),
		"skipped":  len(result.Skipped),
	})

	return result
}

// matchGist tests a gist's files in filename order and stops at the first
// match. A gist counts as skipped when none of its files could be fetched.
func (s *SearchService) matchGist(ctx context.Context, gist *domain.Gist, matcher *pattern.Matcher) gistOutcome {
	files := gist.OrderedFiles()
	if len(files) == 0 {
		s.logWarn("Gist has no files", map[string]interface{}{"gist_id": gist.ID})
		return gistOutcome{skipped: true, reason: "gist has no files"}
	}

	fetched := 0
	var lastErr error
	for _, file := range files {
		content, err := s.gists.FetchRawContent(ctx, file.RawURL)
		if err != nil {
			lastErr = err
			s.logWarn("Failed to fetch gist file", map[string]interface{}{
				"gist_id":  gist.ID,
				"filename": file.Filename,
				"error":    err.Error(),
			})
			continue
		}
		fetched++
		if matcher.Matches(content) {
			return gistOutcome{matched: true}
		}
	}

	if fetched == 0 {
		return gistOutcome{skipped: true, reason: coreerrors.UpstreamMessage(lastErr)}
	}
	return gistOutcome{}
}

// failed builds a failed result that still echoes the request
func (s *SearchService) failed(req domain.SearchRequest, cause error, message string) *domain.SearchResult {
	return &domain.SearchResult{
		Status:   domain.StatusFailed,
		Username: req.Username,
		Pattern:  req.Pattern,
		Matches:  make([]string, 0),
		Message:  message,
		Err:      cause,
	}
}

func (s *SearchService) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *SearchService) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *SearchService) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
