package domain

import "errors"

var (
	// ErrNotFound signals a missing or unpublished catalog item.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery signals search input that cannot be served.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrStoreUnavailable signals that the catalog store failed to answer.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	// ErrQueryTooBroad signals a query matching more items than one search may rank.
	ErrQueryTooBroad = errors.New("query too broad")
)
