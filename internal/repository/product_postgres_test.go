package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/log"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

// newPostgresPool starts a disposable PostgreSQL, connects through
// DATABASE_URL the way the binaries do and applies the migrations.
func newPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("catalog"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	t.Setenv("DATABASE_URL", connStr)
	cfg, err := config.New[config.Postgres]()
	require.NoError(t, err)

	pool, err := db.NewPgxPool(ctx, cfg, log.Discard())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = db.Migrate(ctx, pool)
	require.NoError(t, err)

	return pool
}

func newDeskLamp(now time.Time) model.Product {
	return model.Product{
		Name:        "Desk Lamp",
		Description: "Adjustable LED lamp",
		Price:       decimal.RequireFromString("19.99"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestProductRepository_Postgres(t *testing.T) {
	pool := newPostgresPool(t)
	dbClient := db.NewClient(pool)
	repo := repository.NewProductRepository(dbClient, *sqlc.New())
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Should return the created product on get", func(t *testing.T) {
		created, err := repo.CreateProduct(ctx, newDeskLamp(now))
		require.NoError(t, err)
		require.Positive(t, created.ID)

		got, err := repo.GetProduct(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Desk Lamp", got.Name)
		assert.Equal(t, "Adjustable LED lamp", got.Description)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("19.99")), got.Price.String())
		assert.Equal(t, "19.99", got.Price.StringFixed(2))
		assert.Nil(t, got.ImageURL)
		assert.True(t, got.CreatedAt.Equal(now), got.CreatedAt)
		assert.True(t, got.UpdatedAt.Equal(now), got.UpdatedAt)
	})

	t.Run("Should keep whole prices at two decimal places", func(t *testing.T) {
		p := newDeskLamp(now)
		p.Price = decimal.NewFromInt(25)

		created, err := repo.CreateProduct(ctx, p)
		require.NoError(t, err)

		got, err := repo.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(decimal.NewFromInt(25)), got.Price.String())
	})

	t.Run("Should persist updated values", func(t *testing.T) {
		created, err := repo.CreateProduct(ctx, newDeskLamp(now))
		require.NoError(t, err)

		later := now.Add(time.Minute)
		updated, err := repo.UpdateProduct(ctx, model.Product{
			ID:          created.ID,
			Name:        "Floor Lamp",
			Description: "Tall lamp",
			Price:       decimal.RequireFromString("49.50"),
			ImageURL:    ptr.New("https://img.example.com/floor.png"),
			UpdatedAt:   later,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		got, err := repo.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Floor Lamp", got.Name)
		assert.Equal(t, "Tall lamp", got.Description)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("49.5")), got.Price.String())
		require.NotNil(t, got.ImageURL)
		assert.Equal(t, "https://img.example.com/floor.png", *got.ImageURL)
		assert.True(t, got.CreatedAt.Equal(now), got.CreatedAt)
		assert.True(t, got.UpdatedAt.Equal(later), got.UpdatedAt)
	})

	t.Run("Should drop deleted product from list", func(t *testing.T) {
		created, err := repo.CreateProduct(ctx, newDeskLamp(now))
		require.NoError(t, err)

		require.NoError(t, repo.DeleteProduct(ctx, created.ID))

		products, err := repo.ListProducts(ctx, repository.ListProductsParams{})
		require.NoError(t, err)
		for _, p := range products {
			assert.NotEqual(t, created.ID, p.ID)
		}

		_, err = repo.GetProduct(ctx, created.ID)
		assert.True(t, errors.Is(err, apperr.ProductNotFoundErr), err)
	})

	t.Run("Should search name and description case-insensitively", func(t *testing.T) {
		byName, err := repo.CreateProduct(ctx, model.Product{
			Name: "Quartz Clock", Description: "Wall mounted",
			Price: decimal.RequireFromString("30"), CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
		byDescription, err := repo.CreateProduct(ctx, model.Product{
			Name: "Timer", Description: "Kitchen QUARTZ timer",
			Price: decimal.RequireFromString("8.25"), CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)

		products, err := repo.ListProducts(ctx, repository.ListProductsParams{Search: ptr.New("quartz")})
		require.NoError(t, err)

		ids := make([]int64, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []int64{byName.ID, byDescription.ID}, ids)

		products, err = repo.ListProducts(ctx, repository.ListProductsParams{Search: ptr.New("50%_off")})
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should list in id order without search", func(t *testing.T) {
		products, err := repo.ListProducts(ctx, repository.ListProductsParams{})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for i := 1; i < len(products); i++ {
			assert.Less(t, products[i-1].ID, products[i].ID)
		}
	})

	t.Run("Should return not found for missing id", func(t *testing.T) {
		const missing = int64(1 << 40)

		_, err := repo.GetProduct(ctx, missing)
		assert.True(t, errors.Is(err, apperr.ProductNotFoundErr), err)

		_, err = repo.UpdateProduct(ctx, model.Product{
			ID: missing, Name: "x", Description: "y",
			Price: decimal.NewFromInt(1), UpdatedAt: now,
		})
		assert.True(t, errors.Is(err, apperr.ProductNotFoundErr), err)

		err = repo.DeleteProduct(ctx, missing)
		assert.True(t, errors.Is(err, apperr.ProductNotFoundErr), err)
	})

	t.Run("Should roll back create when the transaction fails", func(t *testing.T) {
		var createdID int64
		errAbort := errors.New("abort")

		err := dbClient.WithTx(ctx, func(tx db.DB) error {
			created, err := repo.WithDB(tx).CreateProduct(ctx, newDeskLamp(now))
			if err != nil {
				return err
			}
			createdID = created.ID
			return errAbort
		})
		require.ErrorIs(t, err, errAbort)
		require.Positive(t, createdID)

		_, err = repo.GetProduct(ctx, createdID)
		assert.True(t, errors.Is(err, apperr.ProductNotFoundErr), err)
	})

	t.Run("Should reject negative price at the database", func(t *testing.T) {
		p := newDeskLamp(now)
		p.Price = decimal.NewFromInt(-1)

		_, err := repo.CreateProduct(ctx, p)
		assert.Error(t, err)
	})
}
