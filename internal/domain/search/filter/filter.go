package filter

import "fmt"

// MaxConditions is the maximum number of conditions in one expression.
const MaxConditions = 16

// Catalog attribute keys usable in filters.
const (
	KeyPublished = "published"
	KeyWeapon    = "weapon"
	KeyCategory  = "category"
	KeyRarity    = "rarity"
)

var allowedKeys = map[string]bool{
	KeyPublished: true,
	KeyWeapon:    true,
	KeyCategory:  true,
	KeyRarity:    true,
}

// Expression is a conjunction of exact tag-match conditions.
type Expression struct {
	must []Condition
}

// NewExpression validates and creates a filter Expression.
func NewExpression(must ...Condition) (Expression, error) {
	if len(must) > MaxConditions {
		return Expression{}, fmt.Errorf("too many filter conditions (max %d)", MaxConditions)
	}
	return Expression{must: must}, nil
}

// Eligible returns the expression that admits only published items.
func Eligible() Expression {
	return Expression{must: []Condition{{key: KeyPublished, match: "true"}}}
}

// And returns a new expression holding the conditions of both.
func (e Expression) And(other Expression) Expression {
	must := make([]Condition, 0, len(e.must)+len(other.must))
	must = append(must, e.must...)
	must = append(must, other.must...)
	return Expression{must: must}
}

// Must returns the conditions.
func (e Expression) Must() []Condition { return e.must }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.must) == 0 }

// Condition is a single exact tag match.
type Condition struct {
	key   string
	match string
}

// NewMatch creates an exact tag match condition on a catalog attribute.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if !allowedKeys[key] {
		return Condition{}, fmt.Errorf("unknown filter key %q", key)
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }
