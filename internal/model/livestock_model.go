package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Livestock is a catalog row. Gender follows the legacy encoding:
// "M", "F" or "mixed" for group listings.
type Livestock struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(200);not null"`
	CategoryId uuid.UUID `gorm:"type:uuid;not null;index"`
	Category   *Category `gorm:"foreignKey:CategoryId"`
	Breed      string    `gorm:"type:varchar(100)"`

	Age    string `gorm:"type:varchar(50)"`
	Weight string `gorm:"type:varchar(50)"`
	Gender string `gorm:"type:varchar(10)"`

	Price    float64 `gorm:"type:numeric(12,2);not null"`
	Currency string  `gorm:"type:varchar(3);default:'NGN'"`
	Location string  `gorm:"type:varchar(200)"`
	IsSold   bool    `gorm:"default:false;index"`

	Description        string         `gorm:"type:text"`
	HealthStatus       string         `gorm:"type:text"`
	VaccinationHistory datatypes.JSON `gorm:"type:jsonb"`

	Tags []*Tag `gorm:"many2many:livestock_tags"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Livestock) TableName() string {
	return "livestock"
}
