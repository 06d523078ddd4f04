package mapper

import (
	"encoding/json"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/model"
)

type LivestockMapper struct{}

func NewLivestockMapper() *LivestockMapper {
	return &LivestockMapper{}
}

func (m *LivestockMapper) ToEntity(l *model.Livestock) *entity.Livestock {
	if l == nil {
		return nil
	}

	categoryName := ""
	if l.Category != nil {
		categoryName = l.Category.Name
	}

	tags := make([]string, 0, len(l.Tags))
	for _, t := range l.Tags {
		tags = append(tags, t.Name)
	}

	// Vaccination history is stored as a JSON array of strings; a corrupt
	// column degrades to an empty list rather than failing the read.
	var vaccinations []string
	if len(l.VaccinationHistory) > 0 {
		_ = json.Unmarshal(l.VaccinationHistory, &vaccinations)
	}

	return &entity.Livestock{
		Id:           l.Id,
		Name:         l.Name,
		CategoryName: categoryName,
		Breed:        l.Breed,
		Age:          l.Age,
		Weight:       l.Weight,
		Gender:       l.Gender,
		Price:        l.Price,
		Currency:     l.Currency,
		Location:     l.Location,
		IsSold:       l.IsSold,
		Description:  l.Description,
		HealthStatus: l.HealthStatus,
		Vaccinations: vaccinations,
		Tags:         tags,
		CreatedAt:    l.CreatedAt,
	}
}

func (m *LivestockMapper) ToEntities(models []*model.Livestock) []*entity.Livestock {
	entities := make([]*entity.Livestock, len(models))
	for i, l := range models {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
