// ABOUTME: Gist domain model mirrors the GitHub gist listing payload
// ABOUTME: Provides file ordering and public URL helpers used by the search pipeline

package domain

import (
	"sort"
	"strings"
)

// GistFile is one file inside a gist
type GistFile struct {
	Filename string `json:"filename"`
	RawURL   string `json:"raw_url"`
}

// Gist is the metadata of one gist as returned by the listing endpoint.
// Only the fields the search reads are decoded.
type Gist struct {
	ID    string              `json:"id"`
	Files map[string]GistFile `json:"files"`
}

// OrderedFiles returns the gist's files sorted by filename.
// Files without a raw URL are dropped.
func (g *Gist) OrderedFiles() []GistFile {
	names := make([]string, 0, len(g.Files))
	for name := range g.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]GistFile, 0, len(names))
	for _, name := range names {
		f := g.Files[name]
		if f.RawURL == "" {
			continue
		}
		if f.Filename == "" {
			f.Filename = name
		}
		files = append(files, f)
	}
	return files
}

// PublicURL builds the gist's public page URL, {base}/{username}/{id}
func (g *Gist) PublicURL(baseURL, username string) string {
	return strings.TrimRight(baseURL, "/") + "/" + username + "/" + g.ID
}

// DedupeGists drops repeated gist IDs, keeping the first occurrence and the
// original order
func DedupeGists(gists []Gist) []Gist {
	seen := make(map[string]struct{}, len(gists))
	unique := make([]Gist, 0, len(gists))
	for _, g := range gists {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		unique = append(unique, g)
	}
	return unique
}
