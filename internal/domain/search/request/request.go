package request

import (
	"fmt"
	"strings"

	"github.com/nexora-w/skinsearch/internal/domain"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
)

// MaxQueryLength is the maximum query length in bytes after trimming.
const MaxQueryLength = 256

// Limits bound the page size.
type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultLimits returns a page size of 20 capped at 100.
func DefaultLimits() Limits {
	return Limits{DefaultLimit: 20, MaxLimit: 100}
}

// Request is a validated search request.
type Request struct {
	query   string
	page    int
	limit   int
	filters filter.Expression
}

// New trims the query and clamps pagination: page < 1 becomes 1, limit < 1
// becomes the default and limit above the maximum is capped.
// Only an oversized query is rejected.
func New(q string, page, limit int, lim Limits, filters filter.Expression) (Request, error) {
	q = strings.TrimSpace(q)
	if len(q) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d bytes)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if lim.DefaultLimit <= 0 {
		lim.DefaultLimit = DefaultLimits().DefaultLimit
	}
	if lim.MaxLimit < lim.DefaultLimit {
		lim.MaxLimit = lim.DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = lim.DefaultLimit
	}
	if limit > lim.MaxLimit {
		limit = lim.MaxLimit
	}

	return Request{query: q, page: page, limit: limit, filters: filters}, nil
}

// Query returns the trimmed query text.
func (r *Request) Query() string { return r.query }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Filters returns caller-supplied attribute filters.
func (r *Request) Filters() filter.Expression { return r.filters }
