// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient performs outbound requests; the response cache sits beneath it
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records search and upstream counters (optional)
	Metrics Metrics
}
