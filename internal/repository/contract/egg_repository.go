package contract

import (
	"context"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/repository/specification"
)

// EggRepository is the read-only view of the egg catalog.
type EggRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Egg, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Summarize(ctx context.Context) (*entity.InventorySummary, error)
}
