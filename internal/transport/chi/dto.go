package chi

import (
	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
	"github.com/nexora-w/skinsearch/internal/domain/search/result"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeInvalidQuery     ErrorCode = "invalid_query"
	ErrorCodeQueryTooBroad    ErrorCode = "query_too_broad"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeStoreUnavailable ErrorCode = "store_unavailable"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ItemResponse is a catalog item as returned to clients. Scores are not exposed.
type ItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image,omitempty"`
	Weapon      string   `json:"weapon,omitempty"`
	Category    string   `json:"category,omitempty"`
	Rarity      string   `json:"rarity,omitempty"`
	Collections []string `json:"collections"`
}

// SearchResponse is one page of ranked results.
type SearchResponse struct {
	Items   []ItemResponse `json:"items"`
	HasMore bool           `json:"hasMore"`
	Total   int            `json:"total"`
}

// HealthResponse reports aggregated and per-check health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// SearchParams are the query parameters of GET /search.
type SearchParams struct {
	Q        *string
	Page     *int
	Limit    *int
	Weapon   *string
	Category *string
	Rarity   *string
}

func itemToResponse(it *item.Item) ItemResponse {
	collections := it.Collections()
	if collections == nil {
		collections = []string{}
	}
	return ItemResponse{
		ID:          it.ID(),
		Name:        it.Name(),
		Image:       it.Image(),
		Weapon:      it.Weapon(),
		Category:    it.Category(),
		Rarity:      it.Rarity(),
		Collections: collections,
	}
}

func pageToResponse(p *result.Page) SearchResponse {
	items := make([]ItemResponse, 0, len(p.Items()))
	for i := range p.Items() {
		items = append(items, itemToResponse(&p.Items()[i]))
	}
	return SearchResponse{Items: items, HasMore: p.HasMore(), Total: p.Total()}
}
