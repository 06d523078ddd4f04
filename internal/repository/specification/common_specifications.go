package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Limit caps the number of returned rows
type Limit struct {
	Limit int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit)
}

// ByLocationsAny matches the location column against any of the given
// place names (substring, case-insensitive). Both catalogs share the
// "location" column name.
type ByLocationsAny struct {
	Locations []string
}

func (s ByLocationsAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Locations) == 0 {
		return db
	}
	clause := ""
	args := make([]interface{}, 0, len(s.Locations))
	for i, loc := range s.Locations {
		if i > 0 {
			clause += " OR "
		}
		clause += "location ILIKE ?"
		args = append(args, "%"+loc+"%")
	}
	return db.Where(clause, args...)
}
