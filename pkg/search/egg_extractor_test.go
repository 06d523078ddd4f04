package search

import (
	"reflect"
	"testing"
)

func TestEggExtractFullQuery(t *testing.T) {
	e := NewEggExtractor(DefaultEggVocabulary())

	c := e.Extract("fresh organic chicken eggs, crate of 30 under 5k in Lagos")

	if c.CategorySlug != "chicken" {
		t.Errorf("CategorySlug = %q, want chicken", c.CategorySlug)
	}
	if c.EggType != "organic" {
		t.Errorf("EggType = %q, want organic", c.EggType)
	}
	if c.Packaging != "crate_30" {
		t.Errorf("Packaging = %q, want crate_30", c.Packaging)
	}
	if !c.PreferFresh {
		t.Error("PreferFresh = false, want true")
	}
	if c.MaxPrice == nil || *c.MaxPrice != 5000 {
		t.Errorf("MaxPrice = %v, want 5000", c.MaxPrice)
	}
	if !reflect.DeepEqual(c.Locations, []string{"lagos"}) {
		t.Errorf("Locations = %v, want [lagos]", c.Locations)
	}
}

func TestEggTypeOrderedDetection(t *testing.T) {
	tests := []struct {
		query   string
		eggType string
	}{
		{"hatching eggs", "fertilized"},
		{"eggs for incubation", "fertilized"},
		// Fertilized outranks every later keyword when both are present.
		{"organic fertilized eggs", "fertilized"},
		{"organic eggs", "organic"},
		{"free range eggs", "free_range"},
		{"free-range eggs", "free_range"},
		{"table eggs for eating", "table"},
		{"duck eggs", ""},
	}

	e := NewEggExtractor(DefaultEggVocabulary())
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := e.Extract(tt.query).EggType; got != tt.eggType {
				t.Errorf("EggType = %q, want %q", got, tt.eggType)
			}
		})
	}
}

func TestEggSizeDetection(t *testing.T) {
	tests := []struct {
		query string
		size  string
	}{
		{"large eggs", "large"},
		// "extra large" must not be shadowed by the bare "large" token.
		{"extra large eggs", "extra_large"},
		{"extra-large eggs", "extra_large"},
		{"jumbo eggs", "extra_large"},
		{"medium eggs", "medium"},
		{"small quail eggs", "small"},
		{"eggs", ""},
	}

	e := NewEggExtractor(DefaultEggVocabulary())
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := e.Extract(tt.query).Size; got != tt.size {
				t.Errorf("Size = %q, want %q", got, tt.size)
			}
		})
	}
}

func TestEggPackagingDetection(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		packaging string
	}{
		{"full crate", "crate of 30 eggs", "crate_30"},
		{"full keyword", "full crate of eggs", "crate_30"},
		{"half crate", "half crate of eggs", "half_crate_15"},
		{"fifteen crate", "crate 15 eggs", "half_crate_15"},
		{"tray", "tray of eggs", "tray"},
		{"single", "single egg", "single"},
		{"no packaging", "duck eggs", ""},
		// The 30 in a price must not be mistaken for a crate size.
		{"price not a cue", "crates under 30k", "crate_30"},
		{"half beats price amount", "half crate under 30k", "half_crate_15"},
	}

	e := NewEggExtractor(DefaultEggVocabulary())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.query).Packaging; got != tt.packaging {
				t.Errorf("Packaging = %q, want %q", got, tt.packaging)
			}
		})
	}
}

func TestEggCategoryFirstMatchWins(t *testing.T) {
	e := NewEggExtractor(DefaultEggVocabulary())

	// Both chicken and duck appear; the category order decides.
	if got := e.Extract("chicken or duck eggs").CategorySlug; got != "chicken" {
		t.Errorf("CategorySlug = %q, want chicken", got)
	}
	if got := e.Extract("guinea fowl eggs").CategorySlug; got != "guinea-fowl" {
		t.Errorf("CategorySlug = %q, want guinea-fowl", got)
	}
}

func TestEggExtractEmpty(t *testing.T) {
	e := NewEggExtractor(DefaultEggVocabulary())
	if c := e.Extract(""); !c.IsEmpty() {
		t.Errorf("Extract(\"\") = %+v, want empty", c)
	}
}

func TestTokenizeForFallback(t *testing.T) {
	e := NewEggExtractor(DefaultEggVocabulary())

	words := e.TokenizeForFallback("I want fresh eggs for my bakery")

	want := []string{"fresh", "bakery"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("TokenizeForFallback = %v, want %v", words, want)
	}
}
