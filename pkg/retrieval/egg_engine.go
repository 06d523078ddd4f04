package retrieval

import (
	"context"
	"fmt"
	"time"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/pkg/logger"
	"github.com/Balamathias/glafrica/internal/repository/contract"
	"github.com/Balamathias/glafrica/internal/repository/specification"
	"github.com/Balamathias/glafrica/pkg/search"
)

// EggEngine runs the tiered search against the egg catalog. Its fallback
// tier surfaces featured stock first, unlike the livestock engine's
// purely recency-ordered one.
type EggEngine struct {
	repo      contract.EggRepository
	tokenizer *search.EggExtractor
	log       logger.ILogger
	now       func() time.Time
}

func NewEggEngine(repo contract.EggRepository, log logger.ILogger) *EggEngine {
	return &EggEngine{
		repo:      repo,
		tokenizer: search.NewEggExtractor(search.DefaultEggVocabulary()),
		log:       log,
		now:       time.Now,
	}
}

// NewEggEngineWithClock pins the fresh-window horizon for tests.
func NewEggEngineWithClock(repo contract.EggRepository, log logger.ILogger, now func() time.Time) *EggEngine {
	e := NewEggEngine(repo, log)
	e.now = now
	return e
}

func (e *EggEngine) Search(ctx context.Context, criteria search.EggCriteria, rawQuery string, limit int) ([]*entity.Egg, Tier, error) {
	if !criteria.IsEmpty() {
		items, err := e.repo.FindAll(ctx, e.strictSpecs(criteria, limit)...)
		if err != nil {
			return nil, TierStrict, fmt.Errorf("strict tier: %w", err)
		}
		if len(items) > 0 {
			e.logTier(TierStrict, len(items))
			return items, TierStrict, nil
		}
	}

	// Tier 2 tokenizes with the egg stopword list so filler like "eggs"
	// itself does not swamp the OR match.
	if words := capWords(e.tokenizer.TokenizeForFallback(rawQuery)); len(words) > 0 {
		items, err := e.repo.FindAll(ctx,
			specification.EggAvailable{},
			specification.EggBroadTermsAny{Words: words},
			specification.OrderBy{Field: "eggs.created_at", Desc: true},
			specification.Limit{Limit: limit},
		)
		if err != nil {
			return nil, TierBroad, fmt.Errorf("broad tier: %w", err)
		}
		if len(items) > 0 {
			e.logTier(TierBroad, len(items))
			return items, TierBroad, nil
		}
	}

	items, err := e.repo.FindAll(ctx,
		specification.EggAvailable{},
		specification.FeaturedFirst{},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, TierFallback, fmt.Errorf("fallback tier: %w", err)
	}
	e.logTier(TierFallback, len(items))
	return items, TierFallback, nil
}

func (e *EggEngine) strictSpecs(criteria search.EggCriteria, limit int) []specification.Specification {
	specs := []specification.Specification{specification.EggAvailable{}}

	if criteria.CategorySlug != "" {
		specs = append(specs, specification.ByEggCategorySlug{Slug: criteria.CategorySlug})
	}
	if criteria.EggType != "" {
		specs = append(specs, specification.ByEggType{EggType: criteria.EggType})
	}
	if criteria.Size != "" {
		specs = append(specs, specification.ByEggSize{Size: criteria.Size})
	}
	if criteria.Packaging != "" {
		specs = append(specs, specification.ByEggPackaging{Packaging: criteria.Packaging})
	}
	if criteria.MaxPrice != nil {
		specs = append(specs, specification.EggPriceAtMost{Amount: *criteria.MaxPrice})
	}
	if criteria.PreferFresh {
		specs = append(specs, specification.EggFreshWindow{Today: e.now()})
	}
	if len(criteria.Locations) > 0 {
		specs = append(specs, specification.ByLocationsAny{Locations: criteria.Locations})
	}

	return append(specs,
		specification.OrderBy{Field: "eggs.created_at", Desc: true},
		specification.Limit{Limit: limit},
	)
}

func (e *EggEngine) logTier(tier Tier, count int) {
	if e.log == nil {
		return
	}
	e.log.Debug("retrieval", "egg search resolved", map[string]interface{}{
		"tier":  string(tier),
		"count": count,
	})
}
