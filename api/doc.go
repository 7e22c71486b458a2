// Package api provides the HTTP layer for the gist search service.
// It uses the Huma framework on a chi router for OpenAPI documentation
// and request validation.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: router, middleware chain and route table
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, request IDs and rate limiting
//
// # Routes
//
//	GET  /ping            plain-text "pong"
//	POST /api/v1/search   legacy search, always 200 with a status field
//	POST /api/v2/search   validated search, failures as RFC 7807 errors
//	GET  /metrics         Prometheus metrics (when configured)
//	GET  /openapi.json    generated OpenAPI document
//	GET  /docs            interactive documentation
//
// The v1 endpoint keeps the historical contract: malformed bodies, missing
// fields and upstream failures all answer 200 with "status": "failed".
// The v2 endpoint validates its body through Huma and maps failures to
// HTTP status codes:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "External service request error: Not Found"
//	}
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	    Metrics:    metrics.New(),
//	}
//	router := api.NewRouter(cfg, searchService)
//	http.ListenAndServe(":9876", router)
package api
