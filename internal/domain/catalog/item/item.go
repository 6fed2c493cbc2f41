package item

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)

// MaxIDLength is the maximum item identifier length.
const MaxIDLength = 128

// Attributes are display fields returned with an item but never searched.
type Attributes struct {
	Image       string
	Weapon      string
	Category    string
	Rarity      string
	Collections []string
}

// Item is a catalog entry (immutable value object).
type Item struct {
	id        string
	name      string
	attrs     Attributes
	published bool
}

// ValidID reports whether id is a well-formed item identifier.
func ValidID(id string) bool {
	return id != "" && len(id) <= MaxIDLength && idRegex.MatchString(id)
}

// New validates and creates an Item.
func New(id, name string, attrs Attributes, published bool) (Item, error) {
	if id == "" {
		return Item{}, fmt.Errorf("item ID is required")
	}
	if !ValidID(id) {
		return Item{}, fmt.Errorf("item ID %q is invalid (max %d chars of [a-zA-Z0-9_.:-])", id, MaxIDLength)
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("item name is required")
	}

	attrs.Collections = slices.Clone(attrs.Collections)
	return Item{id: id, name: name, attrs: attrs, published: published}, nil
}

// Reconstruct creates an Item without validation (storage hydration).
func Reconstruct(id, name string, attrs Attributes, published bool) Item {
	return Item{id: id, name: name, attrs: attrs, published: published}
}

// ID returns the item identifier.
func (i *Item) ID() string { return i.id }

// Name returns the display name, the only searched field.
func (i *Item) Name() string { return i.name }

// Image returns the image reference.
func (i *Item) Image() string { return i.attrs.Image }

// Weapon returns the weapon attribute.
func (i *Item) Weapon() string { return i.attrs.Weapon }

// Category returns the category attribute.
func (i *Item) Category() string { return i.attrs.Category }

// Rarity returns the rarity attribute.
func (i *Item) Rarity() string { return i.attrs.Rarity }

// Collections returns the collection tags.
func (i *Item) Collections() []string { return i.attrs.Collections }

// Published reports whether the item carries the published marker.
func (i *Item) Published() bool { return i.published }

// IsEligible reports whether the item may appear in search results:
// published with a non-blank name.
func (i *Item) IsEligible() bool {
	return i.published && strings.TrimSpace(i.name) != ""
}
