package item

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	attrs := Attributes{
		Image:       "img/ak47-redline.png",
		Weapon:      "AK-47",
		Category:    "Rifle",
		Rarity:      "Classified",
		Collections: []string{"Phoenix"},
	}
	it, err := New("ak47-redline", "AK-47 | Redline", attrs, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID() != "ak47-redline" {
		t.Errorf("ID() = %q", it.ID())
	}
	if it.Name() != "AK-47 | Redline" {
		t.Errorf("Name() = %q", it.Name())
	}
	if it.Weapon() != "AK-47" || it.Category() != "Rifle" || it.Rarity() != "Classified" {
		t.Errorf("attributes = %q/%q/%q", it.Weapon(), it.Category(), it.Rarity())
	}
	if it.Image() != "img/ak47-redline.png" {
		t.Errorf("Image() = %q", it.Image())
	}
	if !it.Published() || !it.IsEligible() {
		t.Error("expected published and eligible")
	}
}

func TestNew_ClonesCollections(t *testing.T) {
	cols := []string{"Phoenix", "Huntsman"}
	it, _ := New("id-1", "AK-47 | Redline", Attributes{Collections: cols}, true)
	cols[0] = "mutated"
	if it.Collections()[0] != "Phoenix" {
		t.Errorf("collections not cloned: %v", it.Collections())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		display string
		wantErr string
	}{
		{"empty id", "", "AK-47 | Redline", "required"},
		{"bad id chars", "ak 47", "AK-47 | Redline", "is invalid"},
		{"long id", strings.Repeat("a", MaxIDLength+1), "AK-47 | Redline", "is invalid"},
		{"empty name", "id-1", "", "name is required"},
		{"blank name", "id-1", "   ", "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.display, Attributes{}, true)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name      string
		display   string
		published bool
		want      bool
	}{
		{"published", "M4A4 | Howl", true, true},
		{"unpublished", "M4A4 | Howl", false, false},
		{"blank name", "  ", true, false},
		{"empty name", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Reconstruct("id", tt.display, Attributes{}, tt.published)
			if got := it.IsEligible(); got != tt.want {
				t.Errorf("IsEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidID(t *testing.T) {
	tests := map[string]bool{
		"ak47-redline":                   true,
		"knife:karambit.fade_1":          true,
		"":                               false,
		"ak 47":                          false,
		"a*":                             false,
		strings.Repeat("a", MaxIDLength): true,
	}
	for id, want := range tests {
		if got := ValidID(id); got != want {
			t.Errorf("ValidID(%q) = %v, want %v", id, got, want)
		}
	}
}
