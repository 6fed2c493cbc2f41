package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/nexora-w/skinsearch/internal/db"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
)

// SearchMatch runs one FT.SEARCH combining the filter expression with the
// disjunction of tag-pattern clauses. Total and entries come from the same
// reply. With no clauses only the filter applies.
func (s *Store) SearchMatch(ctx context.Context, q *db.MatchQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Field == "" && len(q.Clauses) > 0 {
		return nil, fmt.Errorf("field is required")
	}
	if q.Offset < 0 || q.Limit < 0 {
		return nil, fmt.Errorf("offset and limit must not be negative")
	}

	args := []string{q.IndexName, buildMatchQuery(q)}

	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}

	args = append(args,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(q.Limit),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "no such index") || isRedisErr(err, "unknown index name") {
			return nil, &db.Error{Op: db.OpSearch, Err: db.ErrIndexNotFound}
		}
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	res, err := parseListResult(raw)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}
	return res, nil
}

// --- Result parsing ---

func parseListResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, (len(raw)-1)/2)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Query building ---

func buildMatchQuery(q *db.MatchQuery) string {
	var parts []string
	if f := buildFilter(q.Filters); f != "" {
		parts = append(parts, f)
	}
	if m := buildClauses(q.Field, q.Clauses); m != "" {
		parts = append(parts, m)
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}

func buildClauses(field string, clauses []db.MatchClause) string {
	rendered := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if r := buildClause(field, c); r != "" {
			rendered = append(rendered, r)
		}
	}
	if len(rendered) == 0 {
		return ""
	}
	return "(" + strings.Join(rendered, " | ") + ")"
}

func buildClause(field string, c db.MatchClause) string {
	parts := make([]string, 0, len(c))
	for _, p := range c {
		if p.Fragment == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("@%s:{%s}", field, tagPattern(p)))
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return "(" + strings.Join(parts, " ") + ")"
	}
}

func tagPattern(p db.TagPattern) string {
	escaped := tagEscaper.Replace(p.Fragment)
	switch p.Kind {
	case db.PatternPrefix:
		return escaped + "*"
	case db.PatternSuffix:
		return "*" + escaped
	default:
		return "*" + escaped + "*"
	}
}

// buildFilter translates filter.Expression into an FT.SEARCH pre-filter.
func buildFilter(expr filter.Expression) string {
	if expr.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, len(expr.Must()))
	for _, cond := range expr.Must() {
		parts = append(parts, buildTagFilter(cond.Key(), cond.Match()))
	}
	return strings.Join(parts, " ")
}

func buildTagFilter(key, value string) string {
	return fmt.Sprintf("@%s:{%s}", key, tagEscaper.Replace(value))
}

// tagEscaper neutralizes every character with meaning inside a tag query,
// wildcards included, so user text stays literal.
var tagEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"[", "\\[",
	"]", "\\]",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	"|", "\\|",
	"?", "\\?",
	"/", "\\/",
	" ", "\\ ",
)
