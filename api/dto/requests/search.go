// ABOUTME: Request DTOs for the search endpoints
// ABOUTME: Decodes the legacy v1 body by hand and declares the validated v2 body

package requests

import (
	"bytes"
	"encoding/json"

	"gist-search-api/core/domain"
	coreerrors "gist-search-api/core/errors"
)

// InvalidParametersMessage is returned for bodies that are absent, unparseable
// or not a non-empty JSON object
const InvalidParametersMessage = "Invalid parameters"

// SearchRequest is the v2 search body
type SearchRequest struct {
	// Username is the GitHub account to search
	Username string `json:"username" minLength:"1" maxLength:"100" doc:"GitHub username whose public gists are searched" example:"octocat"`

	// Pattern is the regular expression applied to each gist
	Pattern string `json:"pattern" minLength:"1" doc:"Regular expression, matched case-insensitively in multiline mode" example:"hello"`
}

// ToDomain converts the DTO to a domain request
func (r SearchRequest) ToDomain() domain.SearchRequest {
	return domain.SearchRequest{Username: r.Username, Pattern: r.Pattern}
}

// DecodeLegacySearch parses a v1 search body. Missing or null fields come
// back empty and are left for the search service to report.
func DecodeLegacySearch(body []byte) (domain.SearchRequest, error) {
	var req domain.SearchRequest

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &fields); err != nil || len(fields) == 0 {
		return req, &coreerrors.ValidationError{Field: "body", Message: InvalidParametersMessage}
	}

	var err error
	if req.Username, err = stringField(fields, "username"); err != nil {
		return req, err
	}
	if req.Pattern, err = stringField(fields, "pattern"); err != nil {
		return req, err
	}
	return req, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return "", nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &coreerrors.ValidationError{Field: name, Message: name + " must be a string"}
	}
	return value, nil
}
