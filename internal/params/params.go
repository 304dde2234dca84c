package params

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every parse failure so handlers can answer 400.
var ErrInvalid = errors.New("invalid query parameter")

// URL: /v1/products?page=2&limit=30
// → ParsePagination() → Pagination{Limit:30, Page:2, Offset:30}
// → the catalog validates the range and runs LIMIT 30 OFFSET 30
// → HasMore is computed from the separate count
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Page   int `json:"page"`
}

// ParsePagination reads ?page=...&limit=... (keys are case sensitive).
// Missing values take page 1 and defaultLimit. Values are never clamped:
// a present value that is not an integer is an error, and range checks are
// left to the catalog so an out-of-range page is rejected rather than rewritten.
func ParsePagination(q url.Values, defaultLimit int) (Pagination, error) {
	p := Pagination{Limit: defaultLimit, Page: 1}

	limit, ok, err := intParam(q, "limit")
	if err != nil {
		return p, err
	}
	if ok {
		p.Limit = limit
	}

	page, ok, err := intParam(q, "page")
	if err != nil {
		return p, err
	}
	if ok {
		p.Page = page
	}

	if p.Page > 0 && p.Limit > 0 {
		p.Offset = (p.Page - 1) * p.Limit
	}
	return p, nil
}

// ParseID reads a non-negative integer id. A missing key returns def.
func ParseID(q url.Values, key string, def int64) (int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalid, key, raw)
	}
	if id < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalid, key)
	}
	return id, nil
}

func intParam(q url.Values, key string) (int, bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalid, key, raw)
	}
	return n, true, nil
}
