// Package textmatch implements the literal string checks used to match item
// names: substring, prefix, suffix, word-anchored occurrences and ordered
// sequences of terms. Inputs are plain text, never patterns.
package textmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Anchor controls where an occurrence of a term may sit inside the subject.
type Anchor int

const (
	// Anywhere accepts any occurrence.
	Anywhere Anchor = iota
	// WordStart requires the occurrence not to begin inside a word.
	WordStart
	// WholeWord requires the occurrence not to begin or end inside a word.
	WholeWord
)

// IsWordRune reports whether r belongs to a word: letters, digits and underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Contains reports whether term occurs anywhere in s.
func Contains(s, term string) bool { return strings.Contains(s, term) }

// HasPrefix reports whether s starts with term.
func HasPrefix(s, term string) bool { return strings.HasPrefix(s, term) }

// HasSuffix reports whether s ends with term.
func HasSuffix(s, term string) bool { return strings.HasSuffix(s, term) }

// ContainsWord reports whether term occurs in s as a whole word.
func ContainsWord(s, term string) bool { return Index(s, term, 0, WholeWord) >= 0 }

// Span reports whether s starts with head and ends with tail, with the two
// occurrences not overlapping.
func Span(s, head, tail string) bool {
	return len(s) >= len(head)+len(tail) && HasPrefix(s, head) && HasSuffix(s, tail)
}

// Index returns the byte offset of the first occurrence of term in s at or
// after from that satisfies the anchor, or -1.
func Index(s, term string, from int, a Anchor) int {
	if from < 0 {
		from = 0
	}
	for from <= len(s) {
		i := strings.Index(s[from:], term)
		if i < 0 {
			return -1
		}
		at := from + i
		if anchored(s, at, term, a) {
			return at
		}
		if term == "" {
			return -1
		}
		_, size := utf8.DecodeRuneInString(s[at:])
		from = at + size
	}
	return -1
}

// InOrder reports whether every term occurs in s, in the given order and
// without overlap, each occurrence satisfying the anchor.
// Earliest occurrences are taken greedily, which never misses a valid placement.
func InOrder(s string, terms []string, a Anchor) bool {
	pos := 0
	for _, t := range terms {
		i := Index(s, t, pos, a)
		if i < 0 {
			return false
		}
		pos = i + len(t)
	}
	return true
}

func anchored(s string, at int, term string, a Anchor) bool {
	switch a {
	case WordStart:
		return boundaryBefore(s, at, term)
	case WholeWord:
		return boundaryBefore(s, at, term) && boundaryAfter(s, at+len(term), term)
	default:
		return true
	}
}

// boundaryBefore is false only when the term would continue a word already
// running in s.
func boundaryBefore(s string, at int, term string) bool {
	if at == 0 || term == "" {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:at])
	first, _ := utf8.DecodeRuneInString(term)
	return !IsWordRune(prev) || !IsWordRune(first)
}

func boundaryAfter(s string, end int, term string) bool {
	if end >= len(s) || term == "" {
		return true
	}
	next, _ := utf8.DecodeRuneInString(s[end:])
	last, _ := utf8.DecodeLastRuneInString(term)
	return !IsWordRune(next) || !IsWordRune(last)
}
