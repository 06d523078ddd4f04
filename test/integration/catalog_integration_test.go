package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balamathias/glafrica/internal/repository/implementation"
	"github.com/Balamathias/glafrica/internal/repository/specification"
	"github.com/Balamathias/glafrica/pkg/database"
)

// Requires a migrated database; skipped unless DB_CONNECTION_STRING is set.
func TestCatalogRepositories(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	livestockRepo := implementation.NewLivestockRepository(gormDB)
	eggRepo := implementation.NewEggRepository(gormDB)
	ctx := context.Background()

	t.Run("Livestock table accessible", func(t *testing.T) {
		count, err := livestockRepo.Count(ctx)
		assert.NoError(t, err)
		t.Logf("Livestock count: %d", count)
	})

	t.Run("Egg table accessible", func(t *testing.T) {
		count, err := eggRepo.Count(ctx)
		assert.NoError(t, err)
		t.Logf("Egg count: %d", count)
	})

	t.Run("Availability filter executes", func(t *testing.T) {
		items, err := livestockRepo.FindAll(ctx,
			specification.LivestockAvailable{},
			specification.Limit{Limit: 5},
		)
		assert.NoError(t, err)
		for _, item := range items {
			assert.False(t, item.IsSold)
		}
	})

	t.Run("Category join executes", func(t *testing.T) {
		_, err := eggRepo.FindAll(ctx,
			specification.EggAvailable{},
			specification.ByEggCategorySlug{Slug: "chicken"},
			specification.Limit{Limit: 5},
		)
		assert.NoError(t, err)
	})

	t.Run("Summaries aggregate", func(t *testing.T) {
		summary, err := livestockRepo.Summarize(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, summary.Count, int64(0))
		assert.LessOrEqual(t, len(summary.Breeds), 5)
	})
}
