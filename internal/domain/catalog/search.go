package catalog

import (
	"fmt"
	"strings"
)

// MaxSearchTerms caps how many whitespace-separated terms a query may carry.
const MaxSearchTerms = 10

// SearchTerms splits a free-text query into the terms that must all match.
// Repeated terms (case-insensitive) collapse to one.
func SearchTerms(query string) ([]string, error) {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		key := strings.ToLower(f)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, f)
	}
	if len(terms) > MaxSearchTerms {
		return nil, fmt.Errorf("%w: query has %d terms, at most %d allowed",
			ErrInvalidArgument, len(terms), MaxSearchTerms)
	}
	return terms, nil
}
