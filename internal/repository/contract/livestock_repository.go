package contract

import (
	"context"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/repository/specification"
)

// LivestockRepository is the read-only view of the livestock catalog the
// retrieval engine consumes. Writes happen elsewhere (admin tooling), never
// through the engine.
type LivestockRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Livestock, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Summarize aggregates the entire available catalog (count, up to five
	// distinct breeds, price spread) for the chat context.
	Summarize(ctx context.Context) (*entity.InventorySummary, error)
}
