package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog/catalogtest"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

func newTestImporter(t *testing.T) (*importer, *catalogtest.Store) {
	t.Helper()
	store := catalogtest.New()
	cfg := &config.Config{Catalog: config.CatalogConfig{MaxDepth: 16}}
	var tx catalog.TxRunner = store
	return &importer{uc: newUseCases(store.Repositories(), tx, cfg, nil), actor: 3}, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura del CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestParseCategoryRows_CabeceraYRutas(t *testing.T) {
	in := "type,path,description\n" +
		"Electronics, Electronics/Phones/Android ,Teléfonos\n" +
		"\n" +
		"Electronics,Electronics/Phones/iOS\n"
	rows, err := parseCategoryRows(strings.NewReader(in), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Electronics", "Phones", "Android"}, rows[0].Path)
	assert.Equal(t, "Teléfonos", rows[0].Description)
	assert.Equal(t, []string{"Electronics", "Phones", "iOS"}, rows[1].Path)
	assert.Equal(t, "", rows[1].Description)
}

func TestParseCategoryRows_Latin1(t *testing.T) {
	// "Electrónica" en ISO-8859-1: ó = 0xF3.
	in := []byte("type,path\nElectr\xf3nica,Electr\xf3nica/Audio\n")
	rows, err := parseCategoryRows(bytes.NewReader(in), "latin1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Electrónica", rows[0].Type)
	assert.Equal(t, []string{"Electrónica", "Audio"}, rows[0].Path)
}

func TestParseCategoryRows_Errores(t *testing.T) {
	_, err := parseCategoryRows(strings.NewReader("name,parent\nx,y\n"), "")
	assert.ErrorContains(t, err, "type y path")

	_, err = parseCategoryRows(strings.NewReader("type,path\n,Electronics\n"), "")
	assert.ErrorContains(t, err, "línea 2")

	_, err = parseCategoryRows(strings.NewReader("type,path\n"), "ebcdic")
	assert.ErrorContains(t, err, "charset")
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación sobre el almacén en memoria
// ──────────────────────────────────────────────────────────────────────────────

func TestImporter_CreaYReutilizaNiveles(t *testing.T) {
	im, _ := newTestImporter(t)
	ctx := context.Background()
	rows := []categoryRow{
		{Line: 2, Type: "Electronics", Path: []string{"Electronics", "Phones", "Android"}},
		{Line: 3, Type: "Electronics", Path: []string{"Electronics", "Phones", "iOS"}},
	}
	require.NoError(t, im.importRows(ctx, rows))

	assert.Equal(t, 1, im.result.TypesCreated)
	assert.Equal(t, 4, im.result.CategoriesCreated)
	assert.Equal(t, 2, im.result.CategoriesReused)

	ios, err := im.uc.categories.GetBySlug(ctx, "ios")
	require.NoError(t, err)
	require.Len(t, ios.FullPath, 3)
	assert.Equal(t, "Electronics", ios.FullPath[0].Name)
	assert.Equal(t, "Phones", ios.FullPath[1].Name)
	assert.Equal(t, "iOS", ios.FullPath[2].Name)

	// Reimportar no crea nada nuevo.
	im.result = importResult{}
	require.NoError(t, im.importRows(ctx, rows))
	assert.Equal(t, 0, im.result.CategoriesCreated)
	assert.Equal(t, 0, im.result.TypesCreated)
}

func TestImporter_SlugBajoOtroPadre_EsConflicto(t *testing.T) {
	im, _ := newTestImporter(t)
	ctx := context.Background()
	require.NoError(t, im.importRows(ctx, []categoryRow{
		{Line: 2, Type: "Electronics", Path: []string{"Electronics", "Accessories"}},
	}))

	err := im.importRows(ctx, []categoryRow{
		{Line: 7, Type: "Home", Path: []string{"Home", "Accessories"}},
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorContains(t, err, "línea 7")
}

func TestImporter_RaizDeOtroTipo_EsConflicto(t *testing.T) {
	im, _ := newTestImporter(t)
	ctx := context.Background()
	require.NoError(t, im.importRows(ctx, []categoryRow{
		{Line: 2, Type: "Electronics", Path: []string{"Phones"}},
	}))

	err := im.importRows(ctx, []categoryRow{
		{Line: 4, Type: "Fashion", Path: []string{"Phones", "Cases"}},
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorContains(t, err, "línea 4")

	_, err = im.uc.categories.GetBySlug(ctx, "cases")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
