package catalog

import (
	"context"

	"github.com/nexora-w/skinsearch/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hgetAllFn     func(ctx context.Context, key string) (map[string]string, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
	searchMatchFn func(ctx context.Context, q *db.MatchQuery) (*db.SearchResult, error)
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return true, nil
}

func (m *mockStore) SearchMatch(ctx context.Context, q *db.MatchQuery) (*db.SearchResult, error) {
	if m.searchMatchFn != nil {
		return m.searchMatchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func hashFields(name string, published bool) map[string]string {
	p := "false"
	if published {
		p = "true"
	}
	return map[string]string{
		fieldName:        name,
		fieldImage:       "https://cdn.example/" + name + ".png",
		fieldWeapon:      "AK-47",
		fieldCategory:    "Rifle",
		fieldRarity:      "Covert",
		fieldCollections: "Phoenix, Huntsman",
		fieldPublished:   p,
	}
}
