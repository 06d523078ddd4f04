package search

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		query     string
		livestock bool
		eggs      bool
	}{
		{"fresh eggs in Lagos", false, true},
		{"crate of 30", false, true},
		{"hatching eggs for my incubator", false, true},
		{"Boer goat buck", true, false},
		{"dairy cattle under 500k", true, false},
		{"pregnant sow", true, false},
		// Ambiguous poultry terms hit both catalogs.
		{"chicken for sale", true, true},
		{"broiler prices", true, true},
		{"guinea fowl", true, true},
		// No signal at all defaults to both.
		{"something cheap near me", true, true},
		{"", true, true},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Classify(tt.query)
			if got.SearchLivestock != tt.livestock || got.SearchEggs != tt.eggs {
				t.Errorf("Classify(%q) = %+v, want {livestock:%v eggs:%v}",
					tt.query, got, tt.livestock, tt.eggs)
			}
		})
	}
}

func TestClassifyNeverBothFalse(t *testing.T) {
	queries := []string{
		"", "eggs", "goat", "chicken", "random words here", "12345", "???",
	}

	c := NewClassifier()
	for _, q := range queries {
		got := c.Classify(q)
		if !got.SearchLivestock && !got.SearchEggs {
			t.Errorf("Classify(%q) = both false", q)
		}
	}
}
