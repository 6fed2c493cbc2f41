package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexora-w/skinsearch/internal/domain"
	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
	"github.com/nexora-w/skinsearch/internal/domain/search/query"
	"github.com/nexora-w/skinsearch/internal/domain/search/request"
	"github.com/nexora-w/skinsearch/internal/domain/search/result"
	"github.com/nexora-w/skinsearch/internal/metrics"
)

// DefaultMaxCandidates is the most store matches one search ranks.
const DefaultMaxCandidates = 10000

// Service finds, scores, ranks and paginates catalog items.
type Service struct {
	repo          Repository
	scorer        Scorer
	maxCandidates int
}

// New creates a search service. maxCandidates <= 0 uses DefaultMaxCandidates.
func New(repo Repository, scorer Scorer, maxCandidates int) *Service {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	return &Service{repo: repo, scorer: scorer, maxCandidates: maxCandidates}
}

// Search returns one page of published items ranked by relevance to the
// request query. An empty query yields an empty page without touching the store.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	q := query.Parse(req.Query())
	if q.IsEmpty() {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeEmptyQuery).Inc()
		return result.Empty(), nil
	}

	filters := filter.Eligible().And(req.Filters())
	candidates, err := s.repo.FindCandidates(ctx, q, filters, s.maxCandidates)
	if err != nil {
		outcome := metrics.OutcomeStoreError
		if errors.Is(err, domain.ErrQueryTooBroad) {
			outcome = metrics.OutcomeTooBroad
		}
		metrics.SearchRequestsTotal.WithLabelValues(outcome).Inc()
		return result.Page{}, fmt.Errorf("find candidates: %w", err)
	}

	scored := keepRelevant(s.scorer, q, q.Predicates(), candidates)
	rank(scored)

	metrics.SearchCandidates.Observe(float64(len(candidates)))
	metrics.SearchResults.Observe(float64(len(scored)))
	metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeOK).Inc()

	return paginate(scored, req.Page(), req.Limit()), nil
}

// Get returns a published item by ID.
func (s *Service) Get(ctx context.Context, id string) (item.Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return item.Item{}, fmt.Errorf("get item %s: %w", id, err)
	}
	return it, nil
}
