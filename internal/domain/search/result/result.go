package result

import "github.com/nexora-w/skinsearch/internal/domain/catalog/item"

// Page is one slice of ranked search results.
type Page struct {
	items   []item.Item
	hasMore bool
	total   int
}

// New creates a result page.
func New(items []item.Item, hasMore bool, total int) Page {
	return Page{items: items, hasMore: hasMore, total: total}
}

// Empty returns a page with no items and a zero total.
func Empty() Page { return Page{items: []item.Item{}} }

// Items returns the page items in ranked order.
func (p *Page) Items() []item.Item { return p.items }

// HasMore reports whether items exist beyond this page.
func (p *Page) HasMore() bool { return p.hasMore }

// Total returns the number of matching items across all pages.
func (p *Page) Total() int { return p.total }
