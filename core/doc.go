// Package core contains the business logic of the gist search service.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concern.
//
// The core package is organized into several sub-packages:
//
// - domain: gist metadata, search requests and results
// - gists: lists a user's gists and fetches raw file content
// - pattern: compiles and applies search patterns
// - search: orchestrates one search from listing to ordered matches
// - workers: bounded fetch pool used by the search orchestrator
// - errors: custom error types for better error handling
// - interfaces: contracts for external dependencies (HTTP, cache, logger, metrics)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Failures are reported as values on the result, never as panics
//
// # Usage Example
//
//	import (
//	    "gist-search-api/core/domain"
//	    "gist-search-api/core/gists"
//	    "gist-search-api/core/interfaces"
//	    "gist-search-api/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	gistService := gists.NewService(deps, gists.Options{})
//	searchService := search.NewSearchService(deps, gistService, search.Options{Concurrency: 4})
//
//	result := searchService.Search(ctx, domain.SearchRequest{
//	    Username: "octocat",
//	    Pattern:  `hello\s+world`,
//	})
package core
