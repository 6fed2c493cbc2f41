package ranking

import (
	"fmt"
	"strings"

	"github.com/nexora-w/skinsearch/internal/domain/search/query"
	"github.com/nexora-w/skinsearch/internal/domain/search/textmatch"
)

// SignalName identifies a scoring signal.
type SignalName string

// Scoring signals.
const (
	SignalExact     SignalName = "exact"
	SignalPrefix    SignalName = "prefix"
	SignalWholeWord SignalName = "whole_word"
	SignalSubstring SignalName = "substring"
	SignalSpanExact SignalName = "span_exact"
	SignalSpanLoose SignalName = "span_loose"
	SignalWordJoin  SignalName = "word_join"
)

// Signal is a named test over a lowercased name carrying a fixed weight.
type Signal struct {
	Name   SignalName
	Weight int
	match  func(q query.Query, name string) bool
}

// Scorer computes relevance scores. Safe for concurrent use.
type Scorer struct {
	signals []Signal
}

// NewScorer builds a scorer from a validated weight table.
func NewScorer(w Weights) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return &Scorer{signals: []Signal{
		{Name: SignalExact, Weight: w.Exact, match: matchExact},
		{Name: SignalPrefix, Weight: w.Prefix, match: matchPrefix},
		{Name: SignalWholeWord, Weight: w.WholeWord, match: matchWholeWord},
		{Name: SignalSubstring, Weight: w.Substring, match: matchSubstring},
		{Name: SignalSpanExact, Weight: w.SpanExact, match: matchSpanExact},
		{Name: SignalSpanLoose, Weight: w.SpanLoose, match: matchSpanLoose},
		{Name: SignalWordJoin, Weight: w.WordJoin, match: matchWordJoin},
	}}, nil
}

// Score sums the weights of every signal name satisfies for q.
// Depends only on q and name. An empty query scores 0.
func (s *Scorer) Score(q query.Query, name string) int {
	total := 0
	for _, sig := range s.Matched(q, name) {
		total += sig.Weight
	}
	return total
}

// Matched returns the signals name satisfies for q, in table order.
func (s *Scorer) Matched(q query.Query, name string) []Signal {
	if q.IsEmpty() {
		return nil
	}
	name = strings.ToLower(name)
	var out []Signal
	for _, sig := range s.signals {
		if sig.match(q, name) {
			out = append(out, sig)
		}
	}
	return out
}

func matchExact(q query.Query, name string) bool { return name == q.Text() }

func matchPrefix(q query.Query, name string) bool { return textmatch.HasPrefix(name, q.Text()) }

func matchWholeWord(q query.Query, name string) bool { return textmatch.ContainsWord(name, q.Text()) }

func matchSubstring(q query.Query, name string) bool { return textmatch.Contains(name, q.Text()) }

func matchSpanExact(q query.Query, name string) bool {
	return q.HasSpan() && textmatch.Span(name, q.First(), q.Last())
}

func matchSpanLoose(q query.Query, name string) bool {
	return q.HasSpan() && textmatch.InOrder(name, []string{q.First(), q.Last()}, textmatch.WholeWord)
}

func matchWordJoin(q query.Query, name string) bool {
	return textmatch.InOrder(name, q.Words(), textmatch.WordStart)
}
