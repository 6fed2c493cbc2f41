package db

import "github.com/nexora-w/skinsearch/internal/domain/search/filter"

// PatternKind anchors a tag pattern inside the tag value.
type PatternKind int

const (
	// PatternContains matches the fragment anywhere: {*frag*}.
	PatternContains PatternKind = iota
	// PatternPrefix matches values starting with the fragment: {frag*}.
	PatternPrefix
	// PatternSuffix matches values ending with the fragment: {*frag}.
	PatternSuffix
)

// TagPattern is a literal fragment with an anchor. The fragment is plain
// text; the store escapes it before building the query.
type TagPattern struct {
	Fragment string
	Kind     PatternKind
}

// MatchClause is a conjunction of tag patterns over the same field.
type MatchClause []TagPattern

// MatchQuery is the input for tag-pattern candidate search. A document
// matches when it satisfies Filters and at least one clause.
type MatchQuery struct {
	IndexName    string
	Field        string
	Clauses      []MatchClause
	Filters      filter.Expression
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
// Total counts every match, Entries holds at most Limit of them starting at Offset.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
