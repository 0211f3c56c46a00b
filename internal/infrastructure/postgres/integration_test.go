//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// PostgreSQL real en contenedor: migraciones + casos de uso de punta a punta.
// ──────────────────────────────────────────────────────────────────────────────

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("catalogo"),
		tcpostgres.WithUsername("catalogo"),
		tcpostgres.WithPassword("catalogo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPoolFromDSN(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := postgres.NewMigrator(pool).Up(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"001_catalog"}, applied)
	return pool
}

func TestIntegration_MigracionesIdempotentes(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	applied, err := postgres.NewMigrator(pool).Up(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)

	status, err := postgres.NewMigrator(pool).Status(ctx)
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.True(t, status[0].Applied)
}

func TestIntegration_CatalogoCompleto(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repos := postgres.NewRepositories(pool)
	tx := postgres.NewTxRunner(pool)
	opts := catalog.Options{MaxDepth: 16}

	types := catalog.NewCategoryTypeUseCase(repos, tx, nil, nil)
	categories := catalog.NewCategoryUseCase(repos, tx, nil, nil, opts)
	skus := catalog.NewSkuUseCase(repos, tx, nil, nil, opts)

	ct, err := types.Create(ctx, 1, dto.CreateCategoryTypeRequest{Name: "Electronics"})
	require.NoError(t, err)
	root, err := categories.Create(ctx, 1, dto.CreateCategoryRequest{Name: "Electronics", CategoryTypeID: &ct.ID})
	require.NoError(t, err)
	phones, err := categories.Create(ctx, 1, dto.CreateCategoryRequest{Name: "Phones", ParentID: &root.ID})
	require.NoError(t, err)

	refs, err := postgres.SeedReferenceData(ctx, pool, phones.ID, "Handset", "Retail", []postgres.DemoAttribute{
		{Name: "Color", DataType: entity.DataTypeText},
		{Name: "Memory", DataType: entity.DataTypeNumber, UOM: "GB"},
	})
	require.NoError(t, err)

	sku, err := skus.Create(ctx, 1, dto.CreateSkuRequest{
		Name:      "Handset Black 128",
		ProductID: refs.ProductID,
		PriceDetails: []dto.PriceDetailInput{
			{PricelistID: refs.PricelistID, Price: decimal.RequireFromString("199.90")},
		},
		AttributeValues: []dto.AttributeValueInput{
			{AttributeID: refs.Attributes["COLOR"], Value: "Black"},
			{AttributeID: refs.Attributes["MEMORY"], Value: "128"},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9A-F]{10}$`, sku.SkuNumber)
	require.Len(t, sku.PriceDetails, 1)
	assert.True(t, sku.PriceDetails[0].Price.Equal(decimal.RequireFromString("199.90")))
	require.Len(t, sku.FullPath, 4)
	assert.Equal(t, "Electronics", sku.FullPath[0].Name)
	assert.Equal(t, "SKU", sku.FullPath[3].Type)

	// Tramo repetido: la restricción uq_price_detail revierte toda la creación.
	_, err = skus.Create(ctx, 1, dto.CreateSkuRequest{
		Name:      "Handset White 128",
		ProductID: refs.ProductID,
		PriceDetails: []dto.PriceDetailInput{
			{PricelistID: refs.PricelistID, Price: decimal.RequireFromString("10")},
			{PricelistID: refs.PricelistID, Price: decimal.RequireFromString("11")},
		},
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	found, err := repos.Skus.GetByName(ctx, "Handset White 128")
	require.NoError(t, err)
	assert.Nil(t, found)

	// La regla XOR también la impone la base.
	bad := &entity.Category{Name: "Huérfana", Slug: "huerfana"}
	err = repos.Categories.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = categories.SoftDelete(ctx, 1, root.ID)
	assert.ErrorIs(t, err, domain.ErrDependencyConflict)
}
