package dto

import (
	"time"

	"github.com/google/uuid"
)

// Catalog selector values for SearchRequest. "auto" lets the intent
// classifier decide which catalogs to query.
const (
	CatalogAuto      = "auto"
	CatalogLivestock = "livestock"
	CatalogEgg       = "egg"
)

type SearchRequest struct {
	Query   string `json:"query" validate:"required,min=1,max=500"`
	Catalog string `json:"catalog,omitempty" validate:"omitempty,oneof=auto livestock egg"`
	Limit   int    `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

type SearchResponse struct {
	Query     string              `json:"query"`
	Livestock *LivestockResultSet `json:"livestock,omitempty"`
	Eggs      *EggResultSet       `json:"eggs,omitempty"`
}

type LivestockResultSet struct {
	Tier  string             `json:"tier"`
	Items []LivestockItemDTO `json:"items"`
}

type EggResultSet struct {
	Tier  string       `json:"tier"`
	Items []EggItemDTO `json:"items"`
}

type LivestockItemDTO struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	Breed        string    `json:"breed,omitempty"`
	Age          string    `json:"age,omitempty"`
	Weight       string    `json:"weight,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	HealthStatus string    `json:"health_status,omitempty"`
	Vaccinations []string  `json:"vaccinations,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type EggItemDTO struct {
	Id                uuid.UUID     `json:"id"`
	Name              string        `json:"name"`
	Category          string        `json:"category,omitempty"`
	Breed             string        `json:"breed,omitempty"`
	EggType           string        `json:"egg_type,omitempty"`
	Size              string        `json:"size,omitempty"`
	Packaging         string        `json:"packaging,omitempty"`
	EggsPerUnit       int           `json:"eggs_per_unit,omitempty"`
	Price             float64       `json:"price"`
	Currency          string        `json:"currency"`
	QuantityAvailable int           `json:"quantity_available"`
	Location          string        `json:"location,omitempty"`
	Description       string        `json:"description,omitempty"`
	IsFeatured        bool          `json:"is_featured"`
	Tags              []string      `json:"tags,omitempty"`
	Freshness         *FreshnessDTO `json:"freshness,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

type FreshnessDTO struct {
	Status          string `json:"status"`
	DaysUntilExpiry *int   `json:"days_until_expiry,omitempty"`
	ShelfLifeDays   *int   `json:"shelf_life_days,omitempty"`
	FreshPercentage *int   `json:"fresh_percentage,omitempty"`
}
