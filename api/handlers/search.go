// ABOUTME: Search handlers for the legacy v1 contract and the typed v2 Huma operation
// ABOUTME: Both delegate to the search service and differ only in how failures are reported

package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"gist-search-api/api/dto/mappers"
	"gist-search-api/api/dto/requests"
	"gist-search-api/api/dto/responses"
	"gist-search-api/core/domain"
	coreerrors "gist-search-api/core/errors"
	"gist-search-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// maxSearchBodyBytes bounds the legacy request body
const maxSearchBodyBytes = 1 << 20

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	searchService interfaces.SearchService
	logger        interfaces.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService interfaces.SearchService, logger interfaces.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// RegisterRoutes registers the v2 operation on api and the legacy v1 route
// directly on router
func (h *SearchHandler) RegisterRoutes(api huma.API, router chi.Router) {
	huma.Register(api, huma.Operation{
		OperationID: "searchGists",
		Method:      http.MethodPost,
		Path:        "/api/v2/search",
		Summary:     "Search a user's public gists",
		Description: "Returns the public URLs of the user's gists whose content matches the pattern, plus gists that could not be fetched",
		Tags:        []string{"Search"},
	}, h.Search)

	router.Post("/api/v1/search", h.LegacySearch)
}

// SearchInput defines the input for the v2 search operation
type SearchInput struct {
	Body requests.SearchRequest
}

// SearchOutput defines the output for the v2 search operation
type SearchOutput struct {
	Body responses.SearchV2Response
}

// Search handles POST /api/v2/search
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	result := h.searchService.Search(ctx, input.Body.ToDomain())

	if result.Failed() {
		if result.Err == nil {
			return nil, huma.Error500InternalServerError(result.Message)
		}
		return nil, toHumaError(result.Err)
	}

	return &SearchOutput{Body: *mappers.ToSearchV2Response(result)}, nil
}

// LegacySearch handles POST /api/v1/search. It always answers 200 and
// reports every failure in the JSON body.
func (h *SearchHandler) LegacySearch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSearchBodyBytes))
	if err != nil {
		h.writeJSON(w, domain.NewFailedResult(requests.InvalidParametersMessage))
		return
	}

	req, err := requests.DecodeLegacySearch(body)
	if err != nil {
		var validationErr *coreerrors.ValidationError
		message := requests.InvalidParametersMessage
		if stderrors.As(err, &validationErr) {
			message = validationErr.Message
		}
		h.writeJSON(w, domain.NewFailedResult(message))
		return
	}

	h.writeJSON(w, h.searchService.Search(r.Context(), req))
}

func (h *SearchHandler) writeJSON(w http.ResponseWriter, result *domain.SearchResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mappers.ToSearchV1Response(result)); err != nil && h.logger != nil {
		h.logger.Error("Failed to write search response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
