package search

import (
	"cmp"
	"slices"

	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
	"github.com/nexora-w/skinsearch/internal/domain/search/query"
	"github.com/nexora-w/skinsearch/internal/domain/search/result"
)

type scoredItem struct {
	item  item.Item
	score int
}

// keepRelevant scores every candidate and drops ineligible items, items
// matching no predicate and non-positive scores.
func keepRelevant(scorer Scorer, q query.Query, preds []query.Predicate, items []item.Item) []scoredItem {
	out := make([]scoredItem, 0, len(items))
	for i := range items {
		it := &items[i]
		if !it.IsEligible() || !query.MatchesAny(preds, it.Name()) {
			continue
		}
		score := scorer.Score(q, it.Name())
		if score <= 0 {
			continue
		}
		out = append(out, scoredItem{item: *it, score: score})
	}
	return out
}

// rank orders by score desc, then name asc (byte order), then id asc.
func rank(items []scoredItem) {
	slices.SortFunc(items, func(a, b scoredItem) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.item.Name(), b.item.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.item.ID(), b.item.ID())
	})
}

// paginate slices the ranked list. page and limit are already clamped to >= 1.
func paginate(items []scoredItem, page, limit int) result.Page {
	total := len(items)
	pages := (total + limit - 1) / limit
	if page-1 >= pages {
		return result.New([]item.Item{}, false, total)
	}

	offset := (page - 1) * limit
	end := min(offset+limit, total)

	out := make([]item.Item, 0, end-offset)
	for _, s := range items[offset:end] {
		out = append(out, s.item)
	}
	return result.New(out, end < total, total)
}
