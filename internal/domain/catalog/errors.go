package catalog

import "errors"

var (
	// ErrNotFound means the slug or id resolved to no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned before any store call for bad paging or filter input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDataIntegrity flags a cycle or an over-deep category hierarchy.
	ErrDataIntegrity = errors.New("category hierarchy integrity violation")
	// ErrStoreUnavailable wraps every store failure, including timeouts and cancellation.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)
