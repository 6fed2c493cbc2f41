package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nexora-w/skinsearch/internal/db"
	"github.com/nexora-w/skinsearch/internal/domain"
	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
	"github.com/nexora-w/skinsearch/internal/domain/search/query"
)

// minFragmentLen is the shortest wildcard fragment the query engine expands
// (its MINPREFIX default). Shorter fragments cannot narrow the candidate set.
const minFragmentLen = 2

// candidatePageSize is the number of items fetched per store round-trip.
const candidatePageSize = 1000

// DefaultKeyPrefix namespaces all catalog keys.
const DefaultKeyPrefix = "skinsearch:"

// store is the consumer interface for the catalog (ISP).
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchMatch(ctx context.Context, q *db.MatchQuery) (*db.SearchResult, error)
}

// Repo implements usecase/search.Repository over hash-encoded catalog items.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a catalog repository. An empty keyPrefix uses DefaultKeyPrefix.
func New(s store, keyPrefix string) *Repo {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// EnsureIndex creates the catalog index when it is missing.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def, err := buildIndex(r.keyPrefix)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	exists, err := r.store.IndexExists(ctx, def.Name)
	if err != nil {
		return fmt.Errorf("check index %s: %w", def.Name, err)
	}
	if exists {
		return nil
	}

	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", def.Name, err)
	}
	return nil
}

// IndexReady reports whether the catalog index exists.
func (r *Repo) IndexReady(ctx context.Context) (bool, error) {
	ok, err := r.store.IndexExists(ctx, indexName(r.keyPrefix))
	if err != nil {
		return false, fmt.Errorf("check index: %w", err)
	}
	return ok, nil
}

// FindCandidates returns every item matching the filters whose name
// contains the query's required terms. Candidates are fetched in pages of
// candidatePageSize until the store's match count is reached. More than
// maxItems matches is an error, never a partial candidate set.
func (r *Repo) FindCandidates(
	ctx context.Context, q query.Query, filters filter.Expression, maxItems int,
) ([]item.Item, error) {
	if q.IsEmpty() {
		return nil, nil
	}
	if maxItems <= 0 {
		return nil, fmt.Errorf("max candidates must be positive, got %d", maxItems)
	}

	var clauses []db.MatchClause
	if c := narrowingClause(q); len(c) > 0 {
		clauses = []db.MatchClause{c}
	}

	mq := &db.MatchQuery{
		IndexName:    indexName(r.keyPrefix),
		Field:        fieldNameLower,
		Clauses:      clauses,
		Filters:      filters,
		Limit:        min(candidatePageSize, maxItems),
		ReturnFields: returnFields,
	}

	prefix := itemPrefix(r.keyPrefix)
	var items []item.Item
	seen := make(map[string]struct{})

	for {
		res, err := r.store.SearchMatch(ctx, mq)
		if err != nil {
			return nil, fmt.Errorf("find candidates at offset %d: %w: %w", mq.Offset, domain.ErrStoreUnavailable, err)
		}
		if res == nil {
			break
		}
		if res.Total > maxItems {
			return nil, fmt.Errorf("%w: %d items match, at most %d can be ranked",
				domain.ErrQueryTooBroad, res.Total, maxItems)
		}

		for _, e := range res.Entries {
			// pages may shift under concurrent writes
			if _, dup := seen[e.Key]; dup {
				continue
			}
			seen[e.Key] = struct{}{}

			it, err := hashToItem(strings.TrimPrefix(e.Key, prefix), e.Fields)
			if err != nil {
				// malformed record, not searchable
				continue
			}
			items = append(items, it)
		}

		mq.Offset += len(res.Entries)
		if len(res.Entries) == 0 || mq.Offset >= res.Total {
			break
		}
	}
	return items, nil
}

// Get returns a published item by ID.
func (r *Repo) Get(ctx context.Context, id string) (item.Item, error) {
	if !item.ValidID(id) {
		return item.Item{}, domain.ErrNotFound
	}

	key := itemKey(r.keyPrefix, id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return item.Item{}, fmt.Errorf("hgetall %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	if len(m) == 0 {
		return item.Item{}, domain.ErrNotFound
	}

	it, err := hashToItem(id, m)
	if err != nil || !it.IsEligible() {
		return item.Item{}, domain.ErrNotFound
	}
	return it, nil
}

// narrowingClause requires every query term that all relevant names contain.
// Terms shorter than minFragmentLen are skipped; with none left the clause is
// empty and only the filters narrow the candidates.
func narrowingClause(q query.Query) db.MatchClause {
	var clause db.MatchClause
	for _, t := range q.RequiredTerms() {
		if utf8.RuneCountInString(t) >= minFragmentLen {
			clause = append(clause, db.TagPattern{Fragment: t, Kind: db.PatternContains})
		}
	}
	return clause
}
