package search

import (
	"reflect"
	"testing"
)

func TestExtractPriceAndLocation(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())

	c := e.Extract("goats under 50k in Lagos")

	if !reflect.DeepEqual(c.Categories, []string{"goats"}) {
		t.Errorf("Categories = %v, want [goats]", c.Categories)
	}
	if c.PriceBound == nil {
		t.Fatal("PriceBound = nil, want max 50000")
	}
	if c.PriceBound.Direction != BoundMax || c.PriceBound.Amount != 50000 {
		t.Errorf("PriceBound = %+v, want {max 50000}", *c.PriceBound)
	}
	if !reflect.DeepEqual(c.Locations, []string{"lagos"}) {
		t.Errorf("Locations = %v, want [lagos]", c.Locations)
	}
	if len(c.GeneralTerms) != 0 {
		t.Errorf("GeneralTerms = %v, want empty", c.GeneralTerms)
	}
}

func TestExtractPriceBounds(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		direction BoundDirection
		amount    float64
		none      bool
	}{
		{name: "under with k suffix", query: "cattle under 200k", direction: BoundMax, amount: 200000},
		{name: "below with commas", query: "rams below 150,000", direction: BoundMax, amount: 150000},
		{name: "above plain", query: "bulls above 500000", direction: BoundMin, amount: 500000},
		{name: "over as synonym", query: "pigs over 30k", direction: BoundMin, amount: 30000},
		{name: "no price", query: "healthy goats", none: true},
		{name: "contradicting bounds dropped", query: "goats under 50k above 20k", none: true},
	}

	e := NewExtractor(DefaultVocabulary())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.Extract(tt.query)
			if tt.none {
				if c.PriceBound != nil {
					t.Errorf("PriceBound = %+v, want nil", *c.PriceBound)
				}
				return
			}
			if c.PriceBound == nil {
				t.Fatal("PriceBound = nil")
			}
			if c.PriceBound.Direction != tt.direction || c.PriceBound.Amount != tt.amount {
				t.Errorf("PriceBound = %+v, want {%s %v}", *c.PriceBound, tt.direction, tt.amount)
			}
		})
	}
}

func TestExtractGenderPriority(t *testing.T) {
	tests := []struct {
		query  string
		gender string
	}{
		{"male goat", "M"},
		{"female goat", "F"},
		{"boer buck for breeding", "M"},
		{"pregnant doe", "F"},
		{"healthy cattle", ""},
	}

	e := NewExtractor(DefaultVocabulary())
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := e.Extract(tt.query).Gender; got != tt.gender {
				t.Errorf("Gender = %q, want %q", got, tt.gender)
			}
		})
	}
}

func TestExtractBreedsAndQuality(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())

	c := e.Extract("vaccinated Boer goat from Kano")

	if !reflect.DeepEqual(c.Breeds, []string{"boer"}) {
		t.Errorf("Breeds = %v, want [boer]", c.Breeds)
	}
	if !reflect.DeepEqual(c.QualityTerms, []string{"vaccinated"}) {
		t.Errorf("QualityTerms = %v, want [vaccinated]", c.QualityTerms)
	}
	if !reflect.DeepEqual(c.Locations, []string{"kano"}) {
		t.Errorf("Locations = %v, want [kano]", c.Locations)
	}
	// "boer" and "vaccinated" are claimed by their own buckets and must not
	// re-appear as general terms.
	if len(c.GeneralTerms) != 0 {
		t.Errorf("GeneralTerms = %v, want empty", c.GeneralTerms)
	}
}

func TestExtractGeneralTermsKeepOrder(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())

	c := e.Extract("brown spotted goat brown")

	want := []string{"brown", "spotted", "brown"}
	if !reflect.DeepEqual(c.GeneralTerms, want) {
		t.Errorf("GeneralTerms = %v, want %v", c.GeneralTerms, want)
	}
}

func TestExtractEmptyQuery(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())

	c := e.Extract("   ")
	if !c.IsEmpty() {
		t.Errorf("Extract(blank) = %+v, want empty criteria", c)
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())
	query := "healthy chicken and goats under 20k in Lagos"

	first := e.Extract(query)
	for i := 0; i < 10; i++ {
		if got := e.Extract(query); !reflect.DeepEqual(got, first) {
			t.Fatalf("Extract not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestExtractTokenBoundaries(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())

	// "program" must not trip the "ram" keyword.
	c := e.Extract("program")
	if len(c.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", c.Categories)
	}
	if c.Gender != "" {
		t.Errorf("Gender = %q, want empty", c.Gender)
	}
}

func TestExtractPriceWordBoundaries(t *testing.T) {
	tests := []string{
		// "thunder" must not trip the "under" price pattern.
		"thunder 50k goats",
		// "discover" must not trip "over".
		"discover 20k cattle",
	}

	e := NewExtractor(DefaultVocabulary())
	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			c := e.Extract(query)
			if c.PriceBound != nil {
				t.Errorf("PriceBound = %+v, want nil", *c.PriceBound)
			}
		})
	}
}
