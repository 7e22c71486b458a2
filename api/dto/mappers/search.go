// ABOUTME: Mappers for converting search results into API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"gist-search-api/api/dto/responses"
	"gist-search-api/core/domain"
)

// ToSearchV1Response converts a result to the legacy body. Requests that
// never reached the pipeline carry no matches and map to a StatusResponse.
func ToSearchV1Response(result *domain.SearchResult) interface{} {
	if result == nil {
		return nil
	}

	if result.Failed() && result.Matches == nil {
		return &responses.StatusResponse{
			Status:  result.Status,
			Message: result.Message,
		}
	}

	return &responses.SearchV1Response{
		Status:   result.Status,
		Username: result.Username,
		Pattern:  result.Pattern,
		Matches:  nonNil(result.Matches),
		Message:  result.Message,
	}
}

// ToSearchV2Response converts a successful result to the v2 body
func ToSearchV2Response(result *domain.SearchResult) *responses.SearchV2Response {
	if result == nil {
		return nil
	}

	skipped := make([]responses.SkippedGistResponse, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, responses.SkippedGistResponse{ID: s.ID, Reason: s.Reason})
	}

	return &responses.SearchV2Response{
		Status:   result.Status,
		Username: result.Username,
		Pattern:  result.Pattern,
		Matches:  nonNil(result.Matches),
		Skipped:  skipped,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
