package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (f *fixture) mustSku(t *testing.T, w skuWorld, name string) *dto.SkuResponse {
	t.Helper()
	sku, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:      name,
		ProductID: w.productID,
		PriceDetails: []dto.PriceDetailInput{
			{PricelistID: w.pricelistID, Price: price("100.00")},
		},
		AttributeValues: []dto.AttributeValueInput{
			{AttributeID: w.colorID, Value: "Red"},
			{AttributeID: w.memoryID, Value: "128"},
		},
	})
	require.NoError(t, err)
	return sku
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo completo: Electronics → Phones → Handset → "Handset 128GB".
func TestCreateSku_FullPathDeExtremoAExtremo(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	created, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:      "Handset 128GB",
		ProductID: w.productID,
		PriceDetails: []dto.PriceDetailInput{
			{PricelistID: w.pricelistID, Price: price("100.00"), MinimumQuantity: intPtr(1)},
		},
		AttributeValues: []dto.AttributeValueInput{{AttributeID: w.colorID, Value: "Red"}},
	})
	require.NoError(t, err)

	sku, err := f.skus.GetByID(f.ctx, created.ID)
	require.NoError(t, err)

	require.Len(t, sku.FullPath, 3)
	assert.Equal(t, "Phones", sku.FullPath[0].Name)
	assert.Equal(t, "Category", sku.FullPath[0].Type)
	require.NotNil(t, sku.FullPath[0].CategoryType)
	assert.Equal(t, "Electronics", *sku.FullPath[0].CategoryType)
	assert.Equal(t, "Handset", sku.FullPath[1].Name)
	assert.Equal(t, "Product", sku.FullPath[1].Type)
	assert.Equal(t, "Handset 128GB", sku.FullPath[2].Name)
	assert.Equal(t, "SKU", sku.FullPath[2].Type)
	assert.Equal(t, sku.SkuNumber, sku.FullPath[2].SkuNumber)

	require.Len(t, sku.PriceDetails, 1)
	assert.True(t, price("100").Equal(sku.PriceDetails[0].Price))
	assert.Equal(t, 1, sku.PriceDetails[0].MinimumQuantity)
	assert.Equal(t, "RETAIL", sku.PriceDetails[0].Pricelist.Code)

	require.Len(t, sku.SkuAttributeValues, 1)
	assert.Equal(t, "Red", sku.SkuAttributeValues[0].Value)
	assert.Equal(t, "COLOR", sku.SkuAttributeValues[0].Attribute.Code)
	assert.Equal(t, "TEXT", sku.SkuAttributeValues[0].Attribute.DataType)

	assert.Regexp(t, `^[0-9A-F]{10}$`, sku.SkuNumber)
	assert.Equal(t, "handset-128gb", sku.Slug)
}

func TestCreateSku_SkuNumberInformado(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	sku, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{Name: "A", ProductID: w.productID, SkuNumber: strPtr("abcdef0123")})
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF0123", sku.SkuNumber)

	_, err = f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{Name: "B", ProductID: w.productID, SkuNumber: strPtr("ABCDEF0123")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{Name: "C", ProductID: w.productID, SkuNumber: strPtr("XYZ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSku_NombreUnicoGlobal(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	other := f.store.AddProduct(entity.Product{Name: "Otro", Slug: "otro", CategoryID: 0, IsActive: true})
	f.mustSku(t, w, "Handset 128GB")

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{Name: "Handset 128GB", ProductID: other})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateSku_AtributosFaltantesSeReportanJuntos(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:      "Handset",
		ProductID: w.productID,
		AttributeValues: []dto.AttributeValueInput{
			{AttributeID: 901, Value: "x"},
			{AttributeID: w.colorID, Value: "Red"},
			{AttributeID: 902, Value: "y"},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "901")
	assert.Contains(t, err.Error(), "902")
	assert.Equal(t, 0, f.store.SkuCount())
}

func TestCreateSku_ValoresInvalidosSeReportanJuntos(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:      "Handset",
		ProductID: w.productID,
		AttributeValues: []dto.AttributeValueInput{
			{AttributeID: w.memoryID, Value: "mucha"},
			{AttributeID: w.dualSimID, Value: "quizás"},
			{AttributeID: w.launchID, Value: "2024-01-15"},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Memoria")
	assert.Contains(t, err.Error(), "Dual SIM")
	assert.NotContains(t, err.Error(), "Lanzamiento")
	assert.Equal(t, 0, f.store.SkuCount())
}

func TestCreateSku_ListaDePreciosInexistente(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:      "Handset",
		ProductID: w.productID,
		PriceDetails: []dto.PriceDetailInput{
			{PricelistID: w.pricelistID, Price: price("10")},
			{PricelistID: 777, Price: price("10")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "777")
}

func TestCreateSku_PrecioYCantidadInvalidos(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name: "A", ProductID: w.productID,
		PriceDetails: []dto.PriceDetailInput{{PricelistID: w.pricelistID, Price: price("0")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name: "B", ProductID: w.productID,
		PriceDetails: []dto.PriceDetailInput{{PricelistID: w.pricelistID, Price: price("5"), MinimumQuantity: intPtr(0)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSku_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	f.newSkuWorld(t)

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{Name: "A", ProductID: 4040})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos tramos con la misma (lista, cantidad) pasan la validación en memoria y los rechaza el
// constraint de unicidad; la transacción completa se deshace.
func TestCreateSku_TramosDuplicadosLosRechazaElConstraint(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:      "Handset",
		ProductID: w.productID,
		PriceDetails: []dto.PriceDetailInput{
			{PricelistID: w.pricelistID, Price: price("100"), MinimumQuantity: intPtr(1)},
			{PricelistID: w.pricelistID, Price: price("90"), MinimumQuantity: intPtr(1)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 0, f.store.SkuCount())
	assert.Equal(t, 0, f.store.PriceDetailCount())
}

func TestCreateSku_FalloTardioDeshaceTodo(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	f.store.FailOn("AttributeValues.Create", errors.New("conexión perdida"))

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:            "Handset",
		ProductID:       w.productID,
		PriceDetails:    []dto.PriceDetailInput{{PricelistID: w.pricelistID, Price: price("10")}},
		AttributeValues: []dto.AttributeValueInput{{AttributeID: w.colorID, Value: "Red"}},
	})
	require.Error(t, err)
	assert.Equal(t, 0, f.store.SkuCount())
	assert.Equal(t, 0, f.store.PriceDetailCount())
	assert.Equal(t, 0, f.store.AttributeValueCount())
}

func TestCreateSku_AtributoRepetido(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)

	_, err := f.skus.Create(f.ctx, testActor, dto.CreateSkuRequest{
		Name:      "Handset",
		ProductID: w.productID,
		AttributeValues: []dto.AttributeValueInput{
			{AttributeID: w.colorID, Value: "Red"},
			{AttributeID: w.colorID, Value: "Blue"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: valores de atributo (tres estados)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSku_AtributosAusentesNoCambian(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	sku := f.mustSku(t, w, "Handset")

	out, err := f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{Description: strPtr("nuevo")})
	require.NoError(t, err)
	assert.Len(t, out.SkuAttributeValues, 2)
	assert.Equal(t, "nuevo", out.Description)

	out, err = f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{AttributeValues: dto.Null[[]dto.AttributeValueInput]()})
	require.NoError(t, err)
	assert.Len(t, out.SkuAttributeValues, 2, "null se trata como ausente")
}

func TestUpdateSku_ListaVaciaBorraTodos(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	sku := f.mustSku(t, w, "Handset")

	out, err := f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{AttributeValues: dto.Some([]dto.AttributeValueInput{})})
	require.NoError(t, err)
	assert.Empty(t, out.SkuAttributeValues)
	assert.Equal(t, 0, f.store.AttributeValueCount())
}

func TestUpdateSku_ListaReemplazaConjuntoCompleto(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	sku := f.mustSku(t, w, "Handset")

	out, err := f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{AttributeValues: dto.Some([]dto.AttributeValueInput{
		{AttributeID: w.dualSimID, Value: "TRUE"},
		{AttributeID: w.launchID, Value: "2024-03-01"},
	})})
	require.NoError(t, err)
	require.Len(t, out.SkuAttributeValues, 2)
	codes := []string{out.SkuAttributeValues[0].Attribute.Code, out.SkuAttributeValues[1].Attribute.Code}
	assert.ElementsMatch(t, []string{"DUAL_SIM", "LANZAMIENTO"}, codes)
}

func TestUpdateSku_ReemplazoInvalidoNoBorraNada(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	sku := f.mustSku(t, w, "Handset")

	_, err := f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{AttributeValues: dto.Some([]dto.AttributeValueInput{
		{AttributeID: w.memoryID, Value: "doce"},
	})})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 2, f.store.AttributeValueCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: tramos de precio
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSku_BorrarTramoDeOtroSkuEsNoOp(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	a := f.mustSku(t, w, "Handset A")
	b := f.mustSku(t, w, "Handset B")
	foreign := b.PriceDetails[0].ID

	out, err := f.skus.Update(f.ctx, testActor, a.ID, dto.UpdateSkuRequest{PriceDetailsToDelete: []int64{foreign, 123456}})
	require.NoError(t, err)
	assert.Len(t, out.PriceDetails, 1)

	other, err := f.skus.GetByID(f.ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, other.PriceDetails, 1)
	assert.Equal(t, 2, f.store.PriceDetailCount())
}

func TestUpdateSku_BorrarCrearActualizarEnOrden(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	sku := f.mustSku(t, w, "Handset")
	first := sku.PriceDetails[0].ID

	// borrar el tramo qty=1 y crear otro qty=1 en la misma petición: el orden borrar → crear lo permite
	out, err := f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{
		PriceDetailsToDelete: []int64{first},
		PriceDetailsToCreate: []dto.PriceDetailInput{
			{PricelistID: w.pricelistID, Price: price("95.50")},
			{PricelistID: w.pricelistID, Price: price("80"), MinimumQuantity: intPtr(10)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.PriceDetails, 2)

	tier10 := out.PriceDetails[1]
	out, err = f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{
		PriceDetailsToUpdate: []dto.PriceDetailUpdateInput{{ID: tier10.ID, Price: decimalPtr(price("75"))}},
	})
	require.NoError(t, err)
	require.Len(t, out.PriceDetails, 2)
	assert.True(t, price("75").Equal(out.PriceDetails[1].Price))
	assert.Equal(t, 10, out.PriceDetails[1].MinimumQuantity)
}

func TestUpdateSku_ActualizarTramoAjenoSeIgnora(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	a := f.mustSku(t, w, "Handset A")
	b := f.mustSku(t, w, "Handset B")

	_, err := f.skus.Update(f.ctx, testActor, a.ID, dto.UpdateSkuRequest{
		PriceDetailsToUpdate: []dto.PriceDetailUpdateInput{{ID: b.PriceDetails[0].ID, Price: decimalPtr(price("1"))}},
	})
	require.NoError(t, err)

	other, err := f.skus.GetByID(f.ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, price("100").Equal(other.PriceDetails[0].Price))
}

func TestUpdateSku_ChoqueDeTramoDeshaceTodo(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	sku := f.mustSku(t, w, "Handset")

	// crear un tramo que choca con el existente (misma lista, qty=1)
	_, err := f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{
		Name:                 strPtr("Handset Pro"),
		PriceDetailsToCreate: []dto.PriceDetailInput{{PricelistID: w.pricelistID, Price: price("50")}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := f.skus.GetByID(f.ctx, sku.ID)
	require.NoError(t, err)
	assert.Equal(t, "Handset", got.Name, "el cambio escalar también se deshace")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update escalar, SoftDelete y List
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSku_RenombrarYProducto(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	sku := f.mustSku(t, w, "Handset")
	f.mustSku(t, w, "Handset Mini")

	out, err := f.skus.Update(f.ctx, 9, sku.ID, dto.UpdateSkuRequest{Name: strPtr("Handset Max")})
	require.NoError(t, err)
	assert.Equal(t, "handset-max", out.Slug)
	assert.Equal(t, int64(9), out.UpdatedBy)
	assert.Equal(t, "Handset Max", out.FullPath[2].Name)

	_, err = f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{Name: strPtr("Handset Mini")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.skus.Update(f.ctx, testActor, sku.ID, dto.UpdateSkuRequest{ProductID: int64Ptr(5050)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.skus.Update(f.ctx, testActor, 5050, dto.UpdateSkuRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSoftDeleteSku_YListado(t *testing.T) {
	f := newFixture(t)
	w := f.newSkuWorld(t)
	a := f.mustSku(t, w, "Handset A")
	f.mustSku(t, w, "Handset B")

	require.NoError(t, f.skus.SoftDelete(f.ctx, testActor, a.ID))
	assert.ErrorIs(t, f.skus.SoftDelete(f.ctx, testActor, 999), domain.ErrNotFound)

	active := true
	list, err := f.skus.List(f.ctx, dto.SkuFilterRequest{IsActive: &active}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Handset B", list.Items[0].Name)

	all, err := f.skus.List(f.ctx, dto.SkuFilterRequest{Name: "handset"}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Page.Total)

	got, err := f.skus.GetByID(f.ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Len(t, got.PriceDetails, 1, "el borrado lógico no toca los tramos")
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
