package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Balamathias/glafrica/internal/model"
	"github.com/Balamathias/glafrica/pkg/freshness"
)

func TestLivestockMapperVaccinations(t *testing.T) {
	m := NewLivestockMapper()

	entity := m.ToEntity(&model.Livestock{
		Name:               "Boer Buck",
		Category:           &model.Category{Name: "Goats"},
		VaccinationHistory: datatypes.JSON([]byte(`["PPR", "anthrax"]`)),
		Tags:               []*model.Tag{{Name: "healthy"}},
	})

	require.NotNil(t, entity)
	assert.Equal(t, "Goats", entity.CategoryName)
	assert.Equal(t, []string{"PPR", "anthrax"}, entity.Vaccinations)
	assert.Equal(t, []string{"healthy"}, entity.Tags)
}

func TestLivestockMapperCorruptVaccinationJSON(t *testing.T) {
	m := NewLivestockMapper()

	entity := m.ToEntity(&model.Livestock{
		Name:               "Ram",
		VaccinationHistory: datatypes.JSON([]byte(`not json`)),
	})

	require.NotNil(t, entity)
	assert.Empty(t, entity.Vaccinations)
}

func TestEggMapperEvaluatesFreshness(t *testing.T) {
	today := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	m := NewEggMapperWithClock(func() time.Time { return today })

	produced := today.AddDate(0, 0, -10)
	expires := today.AddDate(0, 0, 10)

	entity := m.ToEntity(&model.Egg{
		Name:           "Crate",
		Category:       &model.EggCategory{Name: "Chicken", Slug: "chicken"},
		ProductionDate: &produced,
		ExpiryDate:     &expires,
	})

	require.NotNil(t, entity)
	assert.Equal(t, "chicken", entity.CategorySlug)
	assert.Equal(t, freshness.StatusFresh, entity.Freshness.Status)
	require.NotNil(t, entity.Freshness.FreshPercentage)
	assert.Equal(t, 50, *entity.Freshness.FreshPercentage)
}

func TestEggMapperMissingDates(t *testing.T) {
	m := NewEggMapper()

	entity := m.ToEntity(&model.Egg{Name: "Mystery Eggs"})

	require.NotNil(t, entity)
	assert.Equal(t, freshness.StatusUnknown, entity.Freshness.Status)
	assert.Nil(t, entity.Freshness.DaysUntilExpiry)
}
