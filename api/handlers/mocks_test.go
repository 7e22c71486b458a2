package handlers

import (
	"context"
	"sync"

	"gist-search-api/core/domain"
)

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	mu         sync.Mutex
	searchFunc func(ctx context.Context, req domain.SearchRequest) *domain.SearchResult
	requests   []domain.SearchRequest
}

func (m *mockSearchService) Search(ctx context.Context, req domain.SearchRequest) *domain.SearchResult {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return &domain.SearchResult{
		Status:   domain.StatusSuccess,
		Username: req.Username,
		Pattern:  req.Pattern,
		Matches:  []string{},
		Skipped:  []domain.SkippedGist{},
	}
}

func (m *mockSearchService) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
