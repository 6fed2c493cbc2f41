package search

import (
	"fmt"
	"testing"

	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
	"github.com/nexora-w/skinsearch/internal/domain/search/query"
)

// fixedScorer returns a preset score per name.
type fixedScorer map[string]int

func (f fixedScorer) Score(_ query.Query, name string) int { return f[name] }

func TestKeepRelevant_DropsZeroIneligibleAndUnmatched(t *testing.T) {
	items := []item.Item{
		item.Reconstruct("1", "Alpha", item.Attributes{}, true),
		item.Reconstruct("2", "Beta", item.Attributes{}, true),
		item.Reconstruct("3", "Gamma", item.Attributes{}, false),
		item.Reconstruct("4", "  ", item.Attributes{}, true),
		item.Reconstruct("5", "Delta", item.Attributes{}, true),
		item.Reconstruct("6", "Orbit", item.Attributes{}, true),
	}
	scorer := fixedScorer{"Alpha": 10, "Beta": 0, "Gamma": 99, "  ": 5, "Delta": -3, "Orbit": 7}

	q := query.Parse("a")
	got := keepRelevant(scorer, q, q.Predicates(), items)
	if len(got) != 1 || got[0].item.ID() != "1" || got[0].score != 10 {
		t.Errorf("unexpected survivors: %+v", got)
	}
}

func TestRank_ScoreThenNameThenID(t *testing.T) {
	items := []scoredItem{
		{item: item.Reconstruct("b", "Zeta", item.Attributes{}, true), score: 100},
		{item: item.Reconstruct("c", "Alpha", item.Attributes{}, true), score: 100},
		{item: item.Reconstruct("a", "Alpha", item.Attributes{}, true), score: 100},
		{item: item.Reconstruct("d", "Omega", item.Attributes{}, true), score: 500},
		{item: item.Reconstruct("e", "alpha", item.Attributes{}, true), score: 100},
	}
	rank(items)

	want := []string{"d", "a", "c", "b", "e"}
	for i, w := range want {
		if got := items[i].item.ID(); got != w {
			t.Fatalf("position %d: got %s, want %s (full order %v)", i, got, w, orderOf(items))
		}
	}
}

func TestRank_Monotonic(t *testing.T) {
	items := make([]scoredItem, 0, 50)
	for i := 0; i < 50; i++ {
		items = append(items, scoredItem{
			item:  item.Reconstruct(fmt.Sprintf("id-%02d", i), fmt.Sprintf("Name %d", i%7), item.Attributes{}, true),
			score: (i * 37) % 11,
		})
	}
	rank(items)

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.score < cur.score {
			t.Fatalf("score order broken at %d: %d < %d", i, prev.score, cur.score)
		}
		if prev.score == cur.score && prev.item.Name() > cur.item.Name() {
			t.Fatalf("name order broken at %d: %q > %q", i, prev.item.Name(), cur.item.Name())
		}
	}
}

func TestPaginate_Contract(t *testing.T) {
	items := make([]scoredItem, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, scoredItem{item: item.Reconstruct(fmt.Sprint(i), "n", item.Attributes{}, true), score: 1})
	}

	for limit := 1; limit <= 8; limit++ {
		seen := 0
		for page := 1; ; page++ {
			p := paginate(items, page, limit)
			if p.Total() != 7 {
				t.Fatalf("limit %d page %d: total %d", limit, page, p.Total())
			}
			if len(p.Items()) > limit {
				t.Fatalf("limit %d page %d: %d items", limit, page, len(p.Items()))
			}
			for j, it := range p.Items() {
				if want := fmt.Sprint(seen + j); it.ID() != want {
					t.Fatalf("limit %d page %d: item %s, want %s", limit, page, it.ID(), want)
				}
			}
			seen += len(p.Items())
			if p.HasMore() != (seen < 7) {
				t.Fatalf("limit %d page %d: hasMore %v with %d seen", limit, page, p.HasMore(), seen)
			}
			if !p.HasMore() {
				break
			}
		}
		if seen != 7 {
			t.Errorf("limit %d: walked %d items, want 7", limit, seen)
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := paginate(nil, 1, 20)
	if p.Items() == nil || len(p.Items()) != 0 || p.HasMore() || p.Total() != 0 {
		t.Errorf("unexpected page: %+v", p)
	}
}

func orderOf(items []scoredItem) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].item.ID()
	}
	return out
}
