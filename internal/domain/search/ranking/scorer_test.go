package ranking

import (
	"strings"
	"testing"

	"github.com/nexora-w/skinsearch/internal/domain/search/query"
)

func newDefaultScorer(t *testing.T) *Scorer {
	t.Helper()
	s, err := NewScorer(DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	return s
}

func TestScore_Table(t *testing.T) {
	s := newDefaultScorer(t)

	tests := []struct {
		query string
		name  string
		want  int
	}{
		// prefix + whole word + substring + word join
		{"ak-47", "AK-47 | Redline", 500 + 300 + 100 + 150},
		{"ak-47", "M4A4 | Howl", 0},
		// whole word + substring + loose span + word join
		{"Fire Serpent", "AK-47 | Fire Serpent", 300 + 100 + 250 + 150},
		// exact implies prefix, whole word, substring, exact span, loose span, word join
		{"fire serpent", "Fire Serpent", 1000 + 500 + 300 + 100 + 400 + 250 + 150},
		// first/last spans without the full query text
		{"ak serpent", "AK-47 | Fire Serpent", 400 + 250 + 150},
		// substring only
		{"edli", "AK-47 | Redline", 100},
		// word join on partial words
		{"fire serp", "AK-47 | Fire Serpent", 100 + 150},
		{"fade", "Fade", 1000 + 500 + 300 + 100 + 150},
		// inner whitespace is part of the query text; only the word signals survive
		{"fire  serpent", "Fire Serpent", 400 + 250 + 150},
		{"", "Anything", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.name, func(t *testing.T) {
			got := s.Score(query.Parse(tt.query), tt.name)
			if got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d (signals %v)",
					tt.query, tt.name, got, tt.want, signalNames(s.Matched(query.Parse(tt.query), tt.name)))
			}
		})
	}
}

func signalNames(sigs []Signal) []SignalName {
	out := make([]SignalName, len(sigs))
	for i, s := range sigs {
		out[i] = s.Name
	}
	return out
}

func TestScore_CaseInsensitive(t *testing.T) {
	s := newDefaultScorer(t)
	names := []string{"AK-47 | Redline", "ak-47 | fire serpent", "Ak-47 | Vulcan"}
	for _, n := range names {
		lower := s.Score(query.Parse("ak-47"), n)
		upper := s.Score(query.Parse("AK-47"), n)
		if lower != upper {
			t.Errorf("%q: ak-47=%d AK-47=%d", n, lower, upper)
		}
	}
}

func TestScore_ExactMatchDominates(t *testing.T) {
	s := newDefaultScorer(t)
	q := query.Parse("fire serpent")

	exact := s.Score(q, "Fire Serpent")
	partials := []string{
		"Fire Serpent Case",
		"AK-47 | Fire Serpent",
		"Fire and Serpent",
		"Fire Serpentine",
		"Serpent Fire",
	}
	for _, p := range partials {
		if got := s.Score(q, p); got >= exact {
			t.Errorf("partial %q scored %d, exact scored %d", p, got, exact)
		}
	}
}

func TestScore_SpanRequiresDistinctWords(t *testing.T) {
	s := newDefaultScorer(t)
	for _, sig := range s.Matched(query.Parse("fade fade"), "Fade Fade") {
		if sig.Name == SignalSpanExact || sig.Name == SignalSpanLoose {
			t.Errorf("unexpected span signal %q for repeated word", sig.Name)
		}
	}
}

func TestScore_LooseSpanIsOrdered(t *testing.T) {
	s := newDefaultScorer(t)
	for _, sig := range s.Matched(query.Parse("fire serpent"), "Serpent of Fire") {
		if sig.Name == SignalSpanLoose {
			t.Error("loose span must require first before last")
		}
	}
}

func TestScore_NoPatternInterpretation(t *testing.T) {
	s := newDefaultScorer(t)
	pathological := []string{".*", "(a+)+$", "[", "\\", "*fire*", "a|b", strings.Repeat("a*", 200)}
	for _, raw := range pathological {
		if got := s.Score(query.Parse(raw), "AK-47 | Fire Serpent"); got != 0 {
			t.Errorf("Score(%q) = %d, want 0", raw, got)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := newDefaultScorer(t)
	q := query.Parse("m4a1-s hyper beast")
	first := s.Score(q, "M4A1-S | Hyper Beast")
	for i := 0; i < 10; i++ {
		if got := s.Score(q, "M4A1-S | Hyper Beast"); got != first {
			t.Fatalf("score changed: %d != %d", got, first)
		}
	}
}

func TestScore_PositiveImpliesPredicateMatch(t *testing.T) {
	s := newDefaultScorer(t)
	names := []string{
		"AK-47 | Redline", "AK-47 | Fire Serpent", "M4A4 | Howl",
		"★ Karambit | Fade", "Sticker | Fire", "Serpent Fire",
	}
	queries := []string{"ak", "fire serpent", "howl", "k fade", "fire", "ak fire serpent", "|"}
	for _, raw := range queries {
		q := query.Parse(raw)
		preds := q.Predicates()
		for _, n := range names {
			if s.Score(q, n) > 0 && !query.MatchesAny(preds, n) {
				t.Errorf("%q scored for %q but no predicate matched", n, raw)
			}
		}
	}
}

func TestScore_PositiveImpliesRequiredTerms(t *testing.T) {
	s := newDefaultScorer(t)
	names := []string{
		"AK-47 | Redline", "AK-47 | Fire Serpent", "M4A4 | Howl", "AWP | Redline",
		"★ Karambit | Fade", "Sticker | Fire", "Serpent Fire", "Glock-18 | Fade",
	}
	queries := []string{
		"ak", "AK-47 | Redline", "fire serpent", "k fade", "ak fire serpent", "|", "fade fade", "awp   redline",
	}
	for _, raw := range queries {
		q := query.Parse(raw)
		for _, n := range names {
			if s.Score(q, n) <= 0 {
				continue
			}
			for _, term := range q.RequiredTerms() {
				if !strings.Contains(strings.ToLower(n), term) {
					t.Errorf("%q scored for %q without containing %q", n, raw, term)
				}
			}
		}
	}
}

func TestNewScorer_CustomWeights(t *testing.T) {
	s, err := NewScorer(Weights{Substring: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Score(query.Parse("howl"), "M4A4 | Howl"); got != 7 {
		t.Errorf("score = %d, want 7", got)
	}
}

func TestNewScorer_RejectsInvalid(t *testing.T) {
	if _, err := NewScorer(Weights{Exact: -1, Prefix: 10}); err == nil {
		t.Error("expected error for negative weight")
	}
	if _, err := NewScorer(Weights{}); err == nil {
		t.Error("expected error for all-zero weights")
	}
}

func TestDefaultWeights_PreferenceOrder(t *testing.T) {
	w := DefaultWeights()
	order := []int{w.Exact, w.Prefix, w.WholeWord, w.SpanExact, w.SpanLoose, w.WordJoin, w.Substring}
	for i := 1; i < len(order); i++ {
		if order[i-1] <= order[i] {
			t.Errorf("weight %d (%d) should exceed weight %d (%d)", i-1, order[i-1], i, order[i])
		}
	}
}
