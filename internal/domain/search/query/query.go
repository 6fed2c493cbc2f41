// Package query normalizes free-text search input and derives the predicate
// set used to select candidate items.
package query

import (
	"strings"

	"github.com/nexora-w/skinsearch/internal/domain/search/textmatch"
)

// Query is a normalized search query: trimmed and lowercased, with its
// whitespace-separated tokens.
type Query struct {
	text  string
	words []string
}

// Parse normalizes raw user input. The text keeps inner whitespace as typed;
// only the word list splits on it.
func Parse(raw string) Query {
	text := strings.ToLower(strings.TrimSpace(raw))
	return Query{text: text, words: strings.Fields(text)}
}

// Text returns the trimmed, lowercased query text.
func (q Query) Text() string { return q.text }

// Words returns the query tokens in order.
func (q Query) Words() []string { return q.words }

// IsEmpty reports whether the query has no tokens.
func (q Query) IsEmpty() bool { return len(q.words) == 0 }

// First returns the first token, or "" for an empty query.
func (q Query) First() string {
	if len(q.words) == 0 {
		return ""
	}
	return q.words[0]
}

// Last returns the last token, or "" for an empty query.
func (q Query) Last() string {
	if len(q.words) == 0 {
		return ""
	}
	return q.words[len(q.words)-1]
}

// HasSpan reports whether the query has at least two words with distinct
// first and last tokens.
func (q Query) HasSpan() bool {
	return len(q.words) >= 2 && q.First() != q.Last()
}

// RequiredTerms returns the distinct terms every relevant name contains:
// the first and the last word. Each scoring signal needs the whole text, the
// first/last span or every word in order, and all of them imply both.
func (q Query) RequiredTerms() []string {
	if q.IsEmpty() {
		return nil
	}
	if q.First() == q.Last() {
		return []string{q.First()}
	}
	return []string{q.First(), q.Last()}
}

// Kind names a predicate.
type Kind string

// Predicate kinds.
const (
	KindContainsQuery  Kind = "contains_query"
	KindWordPrefix     Kind = "word_prefix"
	KindWordContains   Kind = "word_contains"
	KindFirstLastExact Kind = "first_last_exact"
	KindFirstThenLast  Kind = "first_then_last"
	KindFirstAndLast   Kind = "first_and_last"
	KindWordChain      Kind = "word_chain"
)

// Predicate is a boolean test over a lowercased item name.
type Predicate struct {
	kind  Kind
	terms []string
}

// Kind returns the predicate kind.
func (p Predicate) Kind() Kind { return p.kind }

// Terms returns the literal terms the predicate checks, in order.
func (p Predicate) Terms() []string { return p.terms }

// Match reports whether name satisfies the predicate. Case-insensitive.
func (p Predicate) Match(name string) bool {
	name = strings.ToLower(name)
	switch p.kind {
	case KindContainsQuery, KindWordContains:
		return textmatch.Contains(name, p.terms[0])
	case KindWordPrefix:
		return textmatch.HasPrefix(name, p.terms[0])
	case KindFirstLastExact:
		return textmatch.Span(name, p.terms[0], p.terms[1])
	case KindFirstThenLast:
		return textmatch.InOrder(name, p.terms, textmatch.WholeWord)
	case KindFirstAndLast:
		return textmatch.Contains(name, p.terms[0]) && textmatch.Contains(name, p.terms[1])
	case KindWordChain:
		return textmatch.InOrder(name, p.terms, textmatch.Anywhere)
	default:
		return false
	}
}

// Predicates derives the candidate predicate set. Overlap between predicates
// is expected and duplicates across words are kept. An empty query yields none.
func (q Query) Predicates() []Predicate {
	if q.IsEmpty() {
		return nil
	}

	preds := make([]Predicate, 0, 1+2*len(q.words)+4)
	preds = append(preds, Predicate{kind: KindContainsQuery, terms: []string{q.text}})

	for _, w := range q.words {
		preds = append(preds,
			Predicate{kind: KindWordPrefix, terms: []string{w}},
			Predicate{kind: KindWordContains, terms: []string{w}},
		)
	}

	if q.HasSpan() {
		span := []string{q.First(), q.Last()}
		preds = append(preds,
			Predicate{kind: KindFirstLastExact, terms: span},
			Predicate{kind: KindFirstThenLast, terms: span},
			Predicate{kind: KindFirstAndLast, terms: span},
		)
	}

	if len(q.words) >= 3 {
		preds = append(preds, Predicate{kind: KindWordChain, terms: q.words})
	}

	return preds
}

// MatchesAny reports whether name satisfies at least one predicate.
func MatchesAny(preds []Predicate, name string) bool {
	for _, p := range preds {
		if p.Match(name) {
			return true
		}
	}
	return false
}
