package search

import (
	"context"

	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
	"github.com/nexora-w/skinsearch/internal/domain/search/query"
)

// Repository defines the catalog storage contract for search.
type Repository interface {
	// FindCandidates returns every item matching the filters whose name
	// contains q's required terms. More than maxItems matches fails with
	// domain.ErrQueryTooBroad.
	FindCandidates(
		ctx context.Context, q query.Query, filters filter.Expression, maxItems int,
	) ([]item.Item, error)

	// Get returns a published item by ID.
	Get(ctx context.Context, id string) (item.Item, error)
}

// Scorer computes the relevance of a name for a query.
type Scorer interface {
	Score(q query.Query, name string) int
}
