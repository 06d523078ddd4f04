package service

import (
	"context"

	"github.com/Balamathias/glafrica/internal/dto"
	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/pkg/logger"
	"github.com/Balamathias/glafrica/pkg/retrieval"
	"github.com/Balamathias/glafrica/pkg/search"
)

const defaultSearchLimit = 20

type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	extractor    *search.Extractor
	eggExtractor *search.EggExtractor
	classifier   *search.Classifier
	livestock    *retrieval.LivestockEngine
	eggs         *retrieval.EggEngine
	logger       logger.ILogger
}

func NewSearchService(
	extractor *search.Extractor,
	eggExtractor *search.EggExtractor,
	classifier *search.Classifier,
	livestock *retrieval.LivestockEngine,
	eggs *retrieval.EggEngine,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		extractor:    extractor,
		eggExtractor: eggExtractor,
		classifier:   classifier,
		livestock:    livestock,
		eggs:         eggs,
		logger:       log,
	}
}

func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	intent := s.resolveIntent(req.Catalog, req.Query)
	s.logger.Info("search", "catalog search", map[string]interface{}{
		"query":            req.Query,
		"search_livestock": intent.SearchLivestock,
		"search_eggs":      intent.SearchEggs,
	})

	response := &dto.SearchResponse{Query: req.Query}

	if intent.SearchLivestock {
		criteria := s.extractor.Extract(req.Query)
		items, tier, err := s.livestock.Search(ctx, criteria, req.Query, limit)
		if err != nil {
			return nil, err
		}
		response.Livestock = &dto.LivestockResultSet{
			Tier:  string(tier),
			Items: toLivestockDTOs(items),
		}
	}

	if intent.SearchEggs {
		criteria := s.eggExtractor.Extract(req.Query)
		items, tier, err := s.eggs.Search(ctx, criteria, req.Query, limit)
		if err != nil {
			return nil, err
		}
		response.Eggs = &dto.EggResultSet{
			Tier:  string(tier),
			Items: toEggDTOs(items),
		}
	}

	return response, nil
}

// resolveIntent honors an explicit catalog selection and falls back to the
// keyword classifier for "auto".
func (s *searchService) resolveIntent(catalog, query string) search.Intent {
	switch catalog {
	case dto.CatalogLivestock:
		return search.Intent{SearchLivestock: true}
	case dto.CatalogEgg:
		return search.Intent{SearchEggs: true}
	default:
		return s.classifier.Classify(query)
	}
}

func toLivestockDTOs(items []*entity.Livestock) []dto.LivestockItemDTO {
	out := make([]dto.LivestockItemDTO, len(items))
	for i, item := range items {
		out[i] = dto.LivestockItemDTO{
			Id:           item.Id,
			Name:         item.Name,
			Category:     item.CategoryName,
			Breed:        item.Breed,
			Age:          item.Age,
			Weight:       item.Weight,
			Gender:       item.Gender,
			Price:        item.Price,
			Currency:     item.Currency,
			Location:     item.Location,
			Description:  item.Description,
			HealthStatus: item.HealthStatus,
			Vaccinations: item.Vaccinations,
			Tags:         item.Tags,
			CreatedAt:    item.CreatedAt,
		}
	}
	return out
}

func toEggDTOs(items []*entity.Egg) []dto.EggItemDTO {
	out := make([]dto.EggItemDTO, len(items))
	for i, item := range items {
		out[i] = dto.EggItemDTO{
			Id:                item.Id,
			Name:              item.Name,
			Category:          item.CategoryName,
			Breed:             item.Breed,
			EggType:           item.EggType,
			Size:              item.Size,
			Packaging:         item.Packaging,
			EggsPerUnit:       item.EggsPerUnit,
			Price:             item.Price,
			Currency:          item.Currency,
			QuantityAvailable: item.QuantityAvailable,
			Location:          item.Location,
			Description:       item.Description,
			IsFeatured:        item.IsFeatured,
			Tags:              item.Tags,
			Freshness: &dto.FreshnessDTO{
				Status:          string(item.Freshness.Status),
				DaysUntilExpiry: item.Freshness.DaysUntilExpiry,
				ShelfLifeDays:   item.Freshness.ShelfLifeDays,
				FreshPercentage: item.Freshness.FreshPercentage,
			},
			CreatedAt: item.CreatedAt,
		}
	}
	return out
}
