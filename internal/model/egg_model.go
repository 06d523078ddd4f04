package model

import (
	"time"

	"github.com/google/uuid"
)

// Egg is a catalog row for egg stock. EggType, Size and Packaging carry the
// fixed enums used by the extractor ("fertilized"/"organic"/"free_range"/
// "table", "small".."extra_large", "single"/"half_crate_15"/"crate_30"/"tray").
type Egg struct {
	Id         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string       `gorm:"type:varchar(200);not null"`
	Slug       string       `gorm:"type:varchar(200);uniqueIndex"`
	CategoryId uuid.UUID    `gorm:"type:uuid;not null;index"`
	Category   *EggCategory `gorm:"foreignKey:CategoryId"`
	Breed      string       `gorm:"type:varchar(100)"`

	EggType     string `gorm:"type:varchar(20)"`
	Size        string `gorm:"type:varchar(20)"`
	Packaging   string `gorm:"type:varchar(20)"`
	EggsPerUnit int    `gorm:"default:1"`

	Price             float64 `gorm:"type:numeric(12,2);not null"`
	Currency          string  `gorm:"type:varchar(3);default:'NGN'"`
	QuantityAvailable int     `gorm:"default:0"`

	ProductionDate *time.Time `gorm:"type:date"`
	ExpiryDate     *time.Time `gorm:"type:date;index"`

	Location    string `gorm:"type:varchar(200)"`
	Description string `gorm:"type:text"`
	IsAvailable bool   `gorm:"default:true;index"`
	IsFeatured  bool   `gorm:"default:false"`

	Tags []*Tag `gorm:"many2many:egg_tags"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Egg) TableName() string {
	return "eggs"
}
