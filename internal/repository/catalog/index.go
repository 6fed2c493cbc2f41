package catalog

import (
	"github.com/nexora-w/skinsearch/internal/db"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
)

// nameSeparator keeps the whole lowercased name as a single tag value.
const nameSeparator = ";"

func itemPrefix(keyPrefix string) string { return keyPrefix + "item:" }

func itemKey(keyPrefix, id string) string { return itemPrefix(keyPrefix) + id }

func indexName(keyPrefix string) string { return keyPrefix + "items:idx" }

// buildIndex returns the FT index over catalog item hashes. name_lower carries
// a suffix trie so infix and suffix wildcards stay cheap.
func buildIndex(keyPrefix string) (*db.IndexDefinition, error) {
	return db.NewIndex(indexName(keyPrefix)).
		Prefix(itemPrefix(keyPrefix)).
		TagWithOpts(fieldNameLower, db.TagOptions{Separator: nameSeparator, SuffixTrie: true}).
		Tag(filter.KeyPublished).
		Tag(filter.KeyWeapon).
		Tag(filter.KeyCategory).
		Tag(filter.KeyRarity).
		TagWithOpts(fieldCollections, db.TagOptions{Separator: collectionsSeparator}).
		Build()
}
