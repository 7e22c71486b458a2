// ABOUTME: Response DTOs for the search endpoints
// ABOUTME: Keeps the legacy v1 shape separate from the extended v2 shape

package responses

// StatusResponse is the legacy body for requests rejected before searching
type StatusResponse struct {
	Status  string `json:"status" doc:"Always 'failed'"`
	Message string `json:"message" doc:"Why the request was rejected"`
}

// SearchV1Response is the legacy search result
type SearchV1Response struct {
	Status   string   `json:"status" doc:"'success' or 'failed'"`
	Username string   `json:"username" doc:"Searched GitHub username"`
	Pattern  string   `json:"pattern" doc:"Searched regular expression"`
	Matches  []string `json:"matches" doc:"Public URLs of matching gists, in listing order"`
	Message  string   `json:"message,omitempty" doc:"Failure reason"`
}

// SkippedGistResponse describes a gist whose content could not be fetched
type SkippedGistResponse struct {
	ID     string `json:"id" doc:"Gist identifier"`
	Reason string `json:"reason" doc:"Last fetch error for the gist"`
}

// SearchV2Response is the search result including skipped gists
type SearchV2Response struct {
	Status   string                `json:"status" doc:"Always 'success'; failures are reported as HTTP errors"`
	Username string                `json:"username" doc:"Searched GitHub username"`
	Pattern  string                `json:"pattern" doc:"Searched regular expression"`
	Matches  []string              `json:"matches" doc:"Public URLs of matching gists, in listing order"`
	Skipped  []SkippedGistResponse `json:"skipped" doc:"Gists left out because none of their files could be fetched"`
}
