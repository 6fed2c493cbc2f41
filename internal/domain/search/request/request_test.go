package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/nexora-w/skinsearch/internal/domain"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("  ak-47 ", 0, 0, DefaultLimits(), filter.Expression{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "ak-47" {
		t.Errorf("Query() = %q, want trimmed", r.Query())
	}
	if r.Page() != 1 {
		t.Errorf("Page() = %d, want 1", r.Page())
	}
	if r.Limit() != 20 {
		t.Errorf("Limit() = %d, want 20", r.Limit())
	}
	if !r.Filters().IsEmpty() {
		t.Error("expected no filters")
	}
}

func TestNew_Clamping(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{"negative page", -5, 10, 1, 10},
		{"zero limit", 2, 0, 2, 20},
		{"negative limit", 2, -1, 2, 20},
		{"limit at max", 1, 100, 1, 100},
		{"limit above max", 1, 1000, 1, 100},
		{"large page kept", 1 << 40, 5, 1 << 40, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("howl", tt.page, tt.limit, DefaultLimits(), filter.Expression{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Page() != tt.wantPage || r.Limit() != tt.wantLim {
				t.Errorf("page/limit = %d/%d, want %d/%d", r.Page(), r.Limit(), tt.wantPage, tt.wantLim)
			}
		})
	}
}

func TestNew_CustomLimits(t *testing.T) {
	r, err := New("howl", 1, 0, Limits{DefaultLimit: 5, MaxLimit: 10}, filter.Expression{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != 5 {
		t.Errorf("Limit() = %d, want 5", r.Limit())
	}

	r, _ = New("howl", 1, 50, Limits{DefaultLimit: 5, MaxLimit: 10}, filter.Expression{})
	if r.Limit() != 10 {
		t.Errorf("Limit() = %d, want 10", r.Limit())
	}
}

func TestNew_ZeroLimitsFallBack(t *testing.T) {
	r, err := New("howl", 1, 0, Limits{}, filter.Expression{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != 20 {
		t.Errorf("Limit() = %d, want 20", r.Limit())
	}
}

func TestNew_EmptyQueryAllowed(t *testing.T) {
	r, err := New("   ", 1, 10, DefaultLimits(), filter.Expression{})
	if err != nil {
		t.Fatalf("empty query must not be an error: %v", err)
	}
	if r.Query() != "" {
		t.Errorf("Query() = %q", r.Query())
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxQueryLength+1), 1, 10, DefaultLimits(), filter.Expression{})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}

	if _, err := New(strings.Repeat("a", MaxQueryLength), 1, 10, DefaultLimits(), filter.Expression{}); err != nil {
		t.Fatalf("query at max length rejected: %v", err)
	}
}

func TestNew_KeepsFilters(t *testing.T) {
	c, _ := filter.NewMatch(filter.KeyWeapon, "AWP")
	f, _ := filter.NewExpression(c)
	r, err := New("asiimov", 1, 10, DefaultLimits(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Filters().Must()) != 1 {
		t.Errorf("filters = %v", r.Filters().Must())
	}
}
