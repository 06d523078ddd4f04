package mapper

import (
	"time"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/model"
	"github.com/Balamathias/glafrica/pkg/freshness"
)

// EggMapper converts egg models to entities, evaluating freshness against
// the injected clock so tests can pin "today".
type EggMapper struct {
	now func() time.Time
}

func NewEggMapper() *EggMapper {
	return &EggMapper{now: time.Now}
}

func NewEggMapperWithClock(now func() time.Time) *EggMapper {
	return &EggMapper{now: now}
}

func (m *EggMapper) ToEntity(e *model.Egg) *entity.Egg {
	if e == nil {
		return nil
	}

	categoryName := ""
	categorySlug := ""
	if e.Category != nil {
		categoryName = e.Category.Name
		categorySlug = e.Category.Slug
	}

	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		tags = append(tags, t.Name)
	}

	return &entity.Egg{
		Id:                e.Id,
		Name:              e.Name,
		CategoryName:      categoryName,
		CategorySlug:      categorySlug,
		Breed:             e.Breed,
		EggType:           e.EggType,
		Size:              e.Size,
		Packaging:         e.Packaging,
		EggsPerUnit:       e.EggsPerUnit,
		Price:             e.Price,
		Currency:          e.Currency,
		QuantityAvailable: e.QuantityAvailable,
		ProductionDate:    e.ProductionDate,
		ExpiryDate:        e.ExpiryDate,
		Location:          e.Location,
		Description:       e.Description,
		IsAvailable:       e.IsAvailable,
		IsFeatured:        e.IsFeatured,
		Tags:              tags,
		Freshness:         freshness.Evaluate(e.ProductionDate, e.ExpiryDate, m.now()),
		CreatedAt:         e.CreatedAt,
	}
}

func (m *EggMapper) ToEntities(models []*model.Egg) []*entity.Egg {
	entities := make([]*entity.Egg, len(models))
	for i, e := range models {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
