// Package ranking scores item names against a query with an additive table of
// weighted signals.
package ranking

import "fmt"

// Weights is the relevance weight table. Every signal an item name satisfies
// adds its weight; overlap between signals is rewarded on purpose.
type Weights struct {
	Exact     int `yaml:"exact" validate:"gte=0"`
	Prefix    int `yaml:"prefix" validate:"gte=0"`
	WholeWord int `yaml:"whole_word" validate:"gte=0"`
	Substring int `yaml:"substring" validate:"gte=0"`
	SpanExact int `yaml:"span_exact" validate:"gte=0"`
	SpanLoose int `yaml:"span_loose" validate:"gte=0"`
	WordJoin  int `yaml:"word_join" validate:"gte=0"`
}

// DefaultWeights returns the stock table. Preference order:
// exact > prefix > whole word > exact span > loose span > word join > substring.
func DefaultWeights() Weights {
	return Weights{
		Exact:     1000,
		Prefix:    500,
		WholeWord: 300,
		Substring: 100,
		SpanExact: 400,
		SpanLoose: 250,
		WordJoin:  150,
	}
}

// IsZero reports whether no weight is set.
func (w Weights) IsZero() bool { return w == Weights{} }

// Validate rejects negative weights and an all-zero table.
func (w Weights) Validate() error {
	for _, s := range w.table() {
		if s.weight < 0 {
			return fmt.Errorf("weight %q must not be negative, got %d", s.name, s.weight)
		}
	}
	if w.IsZero() {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

type namedWeight struct {
	name   SignalName
	weight int
}

func (w Weights) table() []namedWeight {
	return []namedWeight{
		{SignalExact, w.Exact},
		{SignalPrefix, w.Prefix},
		{SignalWholeWord, w.WholeWord},
		{SignalSubstring, w.Substring},
		{SignalSpanExact, w.SpanExact},
		{SignalSpanLoose, w.SpanLoose},
		{SignalWordJoin, w.WordJoin},
	}
}
