package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog/catalogtest"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture común: almacén en memoria + los tres casos de uso.
// ──────────────────────────────────────────────────────────────────────────────

const testActor int64 = 7

type fixture struct {
	ctx        context.Context
	store      *catalogtest.Store
	types      *catalog.CategoryTypeUseCase
	categories *catalog.CategoryUseCase
	skus       *catalog.SkuUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := catalogtest.New()
	repos := store.Repositories()
	opts := catalog.Options{MaxDepth: 16}
	return &fixture{
		ctx:        context.Background(),
		store:      store,
		types:      catalog.NewCategoryTypeUseCase(repos, store, nil, nil),
		categories: catalog.NewCategoryUseCase(repos, store, nil, nil, opts),
		skus:       catalog.NewSkuUseCase(repos, store, nil, nil, opts),
	}
}

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func (f *fixture) mustType(t *testing.T, name string) int64 {
	t.Helper()
	ct, err := f.types.Create(f.ctx, testActor, dto.CreateCategoryTypeRequest{Name: name})
	require.NoError(t, err)
	return ct.ID
}

func (f *fixture) mustRoot(t *testing.T, name string, typeID int64) int64 {
	t.Helper()
	c, err := f.categories.Create(f.ctx, testActor, dto.CreateCategoryRequest{Name: name, CategoryTypeID: int64Ptr(typeID)})
	require.NoError(t, err)
	return c.ID
}

func (f *fixture) mustChild(t *testing.T, name string, parentID int64) int64 {
	t.Helper()
	c, err := f.categories.Create(f.ctx, testActor, dto.CreateCategoryRequest{Name: name, ParentID: int64Ptr(parentID)})
	require.NoError(t, err)
	return c.ID
}

// skuWorld catálogo mínimo para crear SKUs: Electronics → Phones → producto Handset,
// una lista de precios y atributos de cada tipo.
type skuWorld struct {
	productID   int64
	pricelistID int64
	colorID     int64 // TEXT
	memoryID    int64 // NUMBER
	dualSimID   int64 // BOOLEAN
	launchID    int64 // DATE
}

func (f *fixture) newSkuWorld(t *testing.T) skuWorld {
	t.Helper()
	typeID := f.mustType(t, "Electronics")
	phones := f.mustRoot(t, "Phones", typeID)
	return skuWorld{
		productID:   f.store.AddProduct(entity.Product{Name: "Handset", Slug: "handset", CategoryID: phones, IsActive: true}),
		pricelistID: f.store.AddPricelist(entity.Pricelist{Name: "Retail", Code: "RETAIL", IsActive: true}),
		colorID:     f.store.AddAttribute(entity.Attribute{Name: "Color", Code: "COLOR", DataType: entity.DataTypeText, IsActive: true}),
		memoryID:    f.store.AddAttribute(entity.Attribute{Name: "Memoria", Code: "MEMORIA", DataType: entity.DataTypeNumber, UOM: "GB", IsActive: true}),
		dualSimID:   f.store.AddAttribute(entity.Attribute{Name: "Dual SIM", Code: "DUAL_SIM", DataType: entity.DataTypeBoolean, IsActive: true}),
		launchID:    f.store.AddAttribute(entity.Attribute{Name: "Lanzamiento", Code: "LANZAMIENTO", DataType: entity.DataTypeDate, IsActive: true}),
	}
}
