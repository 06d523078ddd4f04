package specification

import (
	"strings"

	"gorm.io/gorm"
)

// LivestockAvailable excludes sold animals. Applied at every search tier.
type LivestockAvailable struct{}

func (s LivestockAvailable) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("livestock.is_sold = ?", false)
}

// ByCategoryNames matches the category name against any of the extracted
// category tags (case-insensitive equality, OR semantics).
type ByCategoryNames struct {
	Names []string
}

func (s ByCategoryNames) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Names) == 0 {
		return db
	}
	clause := ""
	args := make([]interface{}, 0, len(s.Names))
	for i, name := range s.Names {
		if i > 0 {
			clause += " OR "
		}
		clause += "categories.name ILIKE ?"
		args = append(args, name)
	}
	return db.Joins("JOIN categories ON categories.id = livestock.category_id").
		Where(clause, args...)
}

// ByBreedsAny matches breed against any extracted breed term (substring).
type ByBreedsAny struct {
	Breeds []string
}

func (s ByBreedsAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Breeds) == 0 {
		return db
	}
	clause := ""
	args := make([]interface{}, 0, len(s.Breeds))
	for i, breed := range s.Breeds {
		if i > 0 {
			clause += " OR "
		}
		clause += "livestock.breed ILIKE ?"
		args = append(args, "%"+breed+"%")
	}
	return db.Where(clause, args...)
}

// ByGender filters on the legacy "M"/"F"/"mixed" encoding.
type ByGender struct {
	Gender string
}

func (s ByGender) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("livestock.gender = ?", s.Gender)
}

// PriceAtMost / PriceAtLeast carry the extracted price bound.
type PriceAtMost struct {
	Amount float64
}

func (s PriceAtMost) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("livestock.price <= ?", s.Amount)
}

type PriceAtLeast struct {
	Amount float64
}

func (s PriceAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("livestock.price >= ?", s.Amount)
}

// LivestockTermsAny is the strict tier's OR-block: every quality or general
// term may match in name, description, breed, health status or any tag.
type LivestockTermsAny struct {
	Terms []string
}

func (s LivestockTermsAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Terms) == 0 {
		return db
	}

	var clauses []string
	var args []interface{}
	for _, term := range s.Terms {
		pattern := "%" + term + "%"
		clauses = append(clauses,
			"livestock.name ILIKE ?",
			"livestock.description ILIKE ?",
			"livestock.breed ILIKE ?",
			"livestock.health_status ILIKE ?",
			`EXISTS (SELECT 1 FROM livestock_tags lt
				JOIN tags ON tags.id = lt.tag_id
				WHERE lt.livestock_id = livestock.id AND tags.name ILIKE ?)`,
		)
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}

// LivestockBroadTermsAny is the broad fallback tier: raw query words matched
// across name, breed, description, category name and location with no other
// constraint.
type LivestockBroadTermsAny struct {
	Words []string
}

func (s LivestockBroadTermsAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Words) == 0 {
		return db
	}

	var clauses []string
	var args []interface{}
	for _, word := range s.Words {
		pattern := "%" + word + "%"
		clauses = append(clauses,
			"livestock.name ILIKE ?",
			"livestock.breed ILIKE ?",
			"livestock.description ILIKE ?",
			"categories.name ILIKE ?",
			"livestock.location ILIKE ?",
		)
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}
	return db.Joins("JOIN categories ON categories.id = livestock.category_id").
		Where(strings.Join(clauses, " OR "), args...)
}
