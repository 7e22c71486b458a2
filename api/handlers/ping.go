// ABOUTME: Liveness endpoint for the Huma API
// ABOUTME: Answers GET /ping with a plain-text pong regardless of upstream state

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// PingOutput is a raw text/plain body
type PingOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// RegisterPing registers GET /ping
func RegisterPing(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Liveness check",
		Description: "Always returns 200 with body 'pong'",
		Tags:        []string{"Health"},
	}, Ping)
}

// Ping handles GET /ping
func Ping(ctx context.Context, input *struct{}) (*PingOutput, error) {
	return &PingOutput{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte("pong"),
	}, nil
}
