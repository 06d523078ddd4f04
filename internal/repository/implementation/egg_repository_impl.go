package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/mapper"
	"github.com/Balamathias/glafrica/internal/model"
	"github.com/Balamathias/glafrica/internal/repository/contract"
	"github.com/Balamathias/glafrica/internal/repository/specification"
)

type EggRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EggMapper
}

func NewEggRepository(db *gorm.DB) contract.EggRepository {
	return &EggRepositoryImpl{
		db:     db,
		mapper: mapper.NewEggMapper(),
	}
}

func (r *EggRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EggRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Egg, error) {
	var models []*model.Egg
	query := r.applySpecifications(
		r.db.WithContext(ctx).Model(&model.Egg{}).
			Preload("Category").
			Preload("Tags"),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EggRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Egg{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EggRepositoryImpl) Summarize(ctx context.Context) (*entity.InventorySummary, error) {
	available := r.db.WithContext(ctx).Model(&model.Egg{}).Where("is_available = ?", true)

	var summary entity.InventorySummary
	if err := available.Session(&gorm.Session{}).Count(&summary.Count).Error; err != nil {
		return nil, err
	}
	if summary.Count == 0 {
		return &summary, nil
	}

	if err := available.Session(&gorm.Session{}).
		Distinct("breed").
		Where("breed <> ''").
		Limit(5).
		Pluck("breed", &summary.Breeds).Error; err != nil {
		return nil, err
	}

	row := struct {
		Min float64
		Max float64
	}{}
	if err := available.Session(&gorm.Session{}).
		Select("MIN(price) AS min, MAX(price) AS max").
		Scan(&row).Error; err != nil {
		return nil, err
	}
	summary.MinPrice = row.Min
	summary.MaxPrice = row.Max

	return &summary, nil
}
