package entity

import (
	"time"

	"github.com/google/uuid"
)

// Livestock is the engine-facing projection of a catalog row.
type Livestock struct {
	Id           uuid.UUID
	Name         string
	CategoryName string
	Breed        string
	Age          string
	Weight       string
	Gender       string
	Price        float64
	Currency     string
	Location     string
	IsSold       bool
	Description  string
	HealthStatus string
	Vaccinations []string
	Tags         []string
	CreatedAt    time.Time
}
