// Package cache holds short-lived copies of catalog lookups that change
// rarely, such as the brand list and category listings.
package cache

import (
	"context"
	"strings"
	"time"
)

const DefaultTTL = 5 * time.Minute

const keyPrefix = "katalog"

// Cache stores JSON-serialisable values by key. Get decodes into dst and
// reports whether the key was present.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Close() error
}

// Key joins parts into a namespaced cache key.
func Key(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Close() error                                  { return nil }
