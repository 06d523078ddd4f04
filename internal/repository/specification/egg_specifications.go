package specification

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Balamathias/glafrica/pkg/freshness"
)

// EggAvailable excludes delisted stock. Applied at every search tier.
type EggAvailable struct{}

func (s EggAvailable) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("eggs.is_available = ?", true)
}

// ByEggCategorySlug filters by the bird-type slug extracted from the query.
type ByEggCategorySlug struct {
	Slug string
}

func (s ByEggCategorySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN egg_categories ON egg_categories.id = eggs.category_id").
		Where("egg_categories.slug = ?", s.Slug)
}

type ByEggType struct {
	EggType string
}

func (s ByEggType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("eggs.egg_type = ?", s.EggType)
}

type ByEggSize struct {
	Size string
}

func (s ByEggSize) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("eggs.size = ?", s.Size)
}

type ByEggPackaging struct {
	Packaging string
}

func (s ByEggPackaging) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("eggs.packaging = ?", s.Packaging)
}

type EggPriceAtMost struct {
	Amount float64
}

func (s EggPriceAtMost) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("eggs.price <= ?", s.Amount)
}

// EggFreshWindow keeps only stock whose expiry is strictly beyond the
// use-soon horizon, matching the freshness calculator's boundaries.
type EggFreshWindow struct {
	Today time.Time
}

func (s EggFreshWindow) Apply(db *gorm.DB) *gorm.DB {
	horizon := s.Today.AddDate(0, 0, freshness.UseSoonDays)
	return db.Where("eggs.expiry_date IS NOT NULL AND eggs.expiry_date > ?", horizon)
}

// EggBroadTermsAny is the broad fallback tier for eggs: raw query words
// matched across name, breed, description, category name and location.
type EggBroadTermsAny struct {
	Words []string
}

func (s EggBroadTermsAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Words) == 0 {
		return db
	}

	var clauses []string
	var args []interface{}
	for _, word := range s.Words {
		pattern := "%" + word + "%"
		clauses = append(clauses,
			"eggs.name ILIKE ?",
			"eggs.breed ILIKE ?",
			"eggs.description ILIKE ?",
			"egg_categories.name ILIKE ?",
			"eggs.location ILIKE ?",
		)
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}
	return db.Joins("JOIN egg_categories ON egg_categories.id = eggs.category_id").
		Where(strings.Join(clauses, " OR "), args...)
}

// FeaturedFirst orders the egg fallback tier: featured stock first, then
// most recent.
type FeaturedFirst struct{}

func (s FeaturedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("eggs.is_featured DESC, eggs.created_at DESC")
}
