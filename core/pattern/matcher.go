// ABOUTME: Pattern compiler turns a user supplied expression into a reusable matcher
// ABOUTME: Matching is always case-insensitive and multiline

package pattern

import (
	"regexp"

	coreerrors "gist-search-api/core/errors"
)

// flags enables case-insensitive matching and makes ^ and $ match at line
// boundaries. They are fixed for every search.
const flags = "(?im)"

// Matcher is a compiled search pattern. It is safe for concurrent use.
type Matcher struct {
	source string
	re     *regexp.Regexp
}

// Compile compiles expr with the fixed search flags.
// A syntactically invalid expression yields a *errors.PatternError.
func Compile(expr string) (*Matcher, error) {
	re, err := regexp.Compile(flags + expr)
	if err != nil {
		return nil, &coreerrors.PatternError{Pattern: expr, Err: err}
	}
	return &Matcher{source: expr, re: re}, nil
}

// FindAll returns every non-overlapping match in text, in order
func (m *Matcher) FindAll(text string) []string {
	return m.re.FindAllString(text, -1)
}

// Matches reports whether text contains at least one match
func (m *Matcher) Matches(text string) bool {
	return m.re.MatchString(text)
}

// String returns the expression as supplied by the caller
func (m *Matcher) String() string {
	return m.source
}
