package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/pkg/logger"
	"github.com/Balamathias/glafrica/internal/repository/contract"
	"github.com/Balamathias/glafrica/internal/repository/specification"
	"github.com/Balamathias/glafrica/pkg/search"
)

// LivestockEngine runs the tiered search against the livestock catalog.
type LivestockEngine struct {
	repo contract.LivestockRepository
	log  logger.ILogger
}

func NewLivestockEngine(repo contract.LivestockRepository, log logger.ILogger) *LivestockEngine {
	return &LivestockEngine{repo: repo, log: log}
}

// Search never errors on a no-match: each tier is only attempted when the
// previous one came back empty, and the final tier simply returns recent
// available stock. Sold animals are excluded at every tier.
func (e *LivestockEngine) Search(ctx context.Context, criteria search.Criteria, rawQuery string, limit int) ([]*entity.Livestock, Tier, error) {
	// Tier 1: strict AND of every populated field, with quality and general
	// terms as an OR-block on top.
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

	// Tier 2: loosen to an OR word-match over the raw query.
	if words := broadWords(strings.ToLower(strings.TrimSpace(rawQuery))); len(words) > 0 {
		items, err := e.repo.FindAll(ctx,
			specification.LivestockAvailable{},
			specification.LivestockBroadTermsAny{Words: words},
			specification.OrderBy{Field: "livestock.created_at", Desc: true},
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

	// Tier 3: most recent available stock. Empty only when the catalog is.
	items, err := e.repo.FindAll(ctx,
		specification.LivestockAvailable{},
		specification.OrderBy{Field: "livestock.created_at", Desc: true},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, TierFallback, fmt.Errorf("fallback tier: %w", err)
	}
	e.logTier(TierFallback, len(items))
	return items, TierFallback, nil
}

func (e *LivestockEngine) strictSpecs(criteria search.Criteria, limit int) []specification.Specification {
	specs := []specification.Specification{specification.LivestockAvailable{}}

	if len(criteria.Categories) > 0 {
		specs = append(specs, specification.ByCategoryNames{Names: criteria.Categories})
	}
	if len(criteria.Breeds) > 0 {
		specs = append(specs, specification.ByBreedsAny{Breeds: criteria.Breeds})
	}
	if criteria.Gender != "" {
		specs = append(specs, specification.ByGender{Gender: criteria.Gender})
	}
	if criteria.PriceBound != nil {
		if criteria.PriceBound.Direction == search.BoundMax {
			specs = append(specs, specification.PriceAtMost{Amount: criteria.PriceBound.Amount})
		} else {
			specs = append(specs, specification.PriceAtLeast{Amount: criteria.PriceBound.Amount})
		}
	}
	if len(criteria.Locations) > 0 {
		specs = append(specs, specification.ByLocationsAny{Locations: criteria.Locations})
	}

	terms := append(append([]string{}, criteria.QualityTerms...), criteria.GeneralTerms...)
	if len(terms) > 0 {
		specs = append(specs, specification.LivestockTermsAny{Terms: terms})
	}

	return append(specs,
		specification.OrderBy{Field: "livestock.created_at", Desc: true},
		specification.Limit{Limit: limit},
	)
}

func (e *LivestockEngine) logTier(tier Tier, count int) {
	if e.log == nil {
		return
	}
	e.log.Debug("retrieval", "livestock search resolved", map[string]interface{}{
		"tier":  string(tier),
		"count": count,
	})
}
