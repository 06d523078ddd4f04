package model

import (
	"time"

	"github.com/google/uuid"
)

// EggCategory is a bird species/type bucket (chicken, quail, ...).
type EggCategory struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"default:true"`
	Order       int       `gorm:"column:sort_order;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (EggCategory) TableName() string {
	return "egg_categories"
}
