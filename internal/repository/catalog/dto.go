package catalog

import (
	"strings"

	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
)

// Hash field names of a stored catalog item.
const (
	fieldName        = "name"
	fieldNameLower   = "name_lower" // lowercased name, the only searched field
	fieldImage       = "image"
	fieldWeapon      = "weapon"
	fieldCategory    = "category"
	fieldRarity      = "rarity"
	fieldCollections = "collections"
	fieldPublished   = "published"
)

// collectionsSeparator joins collection names inside one hash field.
const collectionsSeparator = ","

// returnFields are the hash fields loaded for every search hit.
var returnFields = []string{
	fieldName, fieldImage, fieldWeapon, fieldCategory, fieldRarity, fieldCollections, fieldPublished,
}

// hashToItem hydrates an Item from stored hash fields. Malformed records
// (bad id, blank name) are reported as an error.
func hashToItem(id string, m map[string]string) (item.Item, error) {
	var collections []string
	if raw := m[fieldCollections]; raw != "" {
		for _, c := range strings.Split(raw, collectionsSeparator) {
			if c = strings.TrimSpace(c); c != "" {
				collections = append(collections, c)
			}
		}
	}

	return item.New(id, m[fieldName], item.Attributes{
		Image:       m[fieldImage],
		Weapon:      m[fieldWeapon],
		Category:    m[fieldCategory],
		Rarity:      m[fieldRarity],
		Collections: collections,
	}, m[fieldPublished] == "true")
}
