package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Balamathias/glafrica/pkg/freshness"
)

// Egg is the engine-facing projection of an egg catalog row, with the
// freshness report already attached by the mapper.
type Egg struct {
	Id                uuid.UUID
	Name              string
	CategoryName      string
	CategorySlug      string
	Breed             string
	EggType           string
	Size              string
	Packaging         string
	EggsPerUnit       int
	Price             float64
	Currency          string
	QuantityAvailable int
	ProductionDate    *time.Time
	ExpiryDate        *time.Time
	Location          string
	Description       string
	IsAvailable       bool
	IsFeatured        bool
	Tags              []string
	Freshness         freshness.Report
	CreatedAt         time.Time
}
