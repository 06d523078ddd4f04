package search

// BoundDirection tells whether a price bound is a floor or a ceiling.
type BoundDirection string

const (
	BoundMin BoundDirection = "min"
	BoundMax BoundDirection = "max"
)

// PriceBound is a single extracted price constraint ("under 50k" -> max 50000).
type PriceBound struct {
	Direction BoundDirection
	Amount    float64
}

// Criteria is the structured filter bag extracted from a free-text livestock
// query. Every field is either zero/absent or derived deterministically from
// the query text; a term captured by one field never re-appears in another.
type Criteria struct {
	Categories   []string
	Breeds       []string
	Gender       string // "M", "F" or empty
	QualityTerms []string
	PriceBound   *PriceBound
	Locations    []string

	// GeneralTerms are significant tokens not claimed by any vocabulary,
	// in first-seen order. Duplicates are kept.
	GeneralTerms []string
}

// IsEmpty reports whether no field was extracted at all. An empty Criteria
// makes the retrieval engine skip the strict tier.
func (c Criteria) IsEmpty() bool {
	return len(c.Categories) == 0 &&
		len(c.Breeds) == 0 &&
		c.Gender == "" &&
		len(c.QualityTerms) == 0 &&
		c.PriceBound == nil &&
		len(c.Locations) == 0 &&
		len(c.GeneralTerms) == 0
}

// EggCriteria is the structured filter bag extracted from an egg query.
type EggCriteria struct {
	CategorySlug string
	EggType      string
	Size         string
	Packaging    string
	PreferFresh  bool
	MaxPrice     *float64
	Locations    []string
}

// IsEmpty reports whether no egg field was extracted.
func (c EggCriteria) IsEmpty() bool {
	return c.CategorySlug == "" &&
		c.EggType == "" &&
		c.Size == "" &&
		c.Packaging == "" &&
		!c.PreferFresh &&
		c.MaxPrice == nil &&
		len(c.Locations) == 0
}

// Intent says which catalogs a query should be run against. It is never
// both false: when no keyword gives a signal, both catalogs are searched.
type Intent struct {
	SearchLivestock bool
	SearchEggs      bool
}
