package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

// electronicsArena: Electronics (tipo Department) → Phones → Smartphones.
func electronicsArena() *catalog.Arena {
	a := catalog.NewArena(0)
	a.Put(catalog.Node{ID: 1, Name: "Electronics", Slug: "electronics", CategoryType: strPtr("Department")})
	a.Put(catalog.Node{ID: 2, ParentID: ptr(1), Name: "Phones", Slug: "phones"})
	a.Put(catalog.Node{ID: 3, ParentID: ptr(2), Name: "Smartphones", Slug: "smartphones"})
	return a
}

// ──────────────────────────────────────────────────────────────────────────────
// FullPath
// ──────────────────────────────────────────────────────────────────────────────

func TestFullPath_RaizAHoja(t *testing.T) {
	a := electronicsArena()

	path, err := a.FullPath(3)
	require.NoError(t, err)
	require.Len(t, path, 3)

	assert.Equal(t, "electronics", path[0].Slug)
	assert.Equal(t, "phones", path[1].Slug)
	assert.Equal(t, "smartphones", path[2].Slug)
	for _, item := range path {
		assert.Equal(t, entity.PathKindCategory, item.Kind)
	}
	// el tipo no se hereda: solo la raíz lo informa
	require.NotNil(t, path[0].CategoryType)
	assert.Equal(t, "Department", *path[0].CategoryType)
	assert.Nil(t, path[1].CategoryType)
	assert.Nil(t, path[2].CategoryType)
}

func TestFullPath_RaizSolaUnElemento(t *testing.T) {
	path, err := electronicsArena().FullPath(1)
	require.NoError(t, err)
	assert.Len(t, path, 1)
}

func TestFullPath_CicloEsJerarquiaCorrupta(t *testing.T) {
	a := catalog.NewArena(0)
	a.Put(catalog.Node{ID: 1, ParentID: ptr(2), Name: "A", Slug: "a"})
	a.Put(catalog.Node{ID: 2, ParentID: ptr(1), Name: "B", Slug: "b"})

	_, err := a.FullPath(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptHierarchy)
}

func TestFullPath_ProfundidadMaxima(t *testing.T) {
	a := catalog.NewArena(3)
	a.Put(catalog.Node{ID: 1, Name: "n1", Slug: "n1", CategoryType: strPtr("T")})
	for id := int64(2); id <= 6; id++ {
		a.Put(catalog.Node{ID: id, ParentID: ptr(id - 1), Name: "n", Slug: "n"})
	}

	_, err := a.FullPath(6)
	assert.ErrorIs(t, err, domain.ErrCorruptHierarchy)

	path, err := a.FullPath(3)
	require.NoError(t, err)
	assert.Len(t, path, 3)
}

func TestFullPath_AncestroNoCargado(t *testing.T) {
	a := catalog.NewArena(0)
	a.Put(catalog.Node{ID: 5, ParentID: ptr(9), Name: "huérfana", Slug: "huerfana"})

	_, err := a.FullPath(5)
	assert.ErrorIs(t, err, domain.ErrCorruptHierarchy)
}

// ──────────────────────────────────────────────────────────────────────────────
// MissingAncestor / IsAncestor / Children
// ──────────────────────────────────────────────────────────────────────────────

func TestMissingAncestor_DevuelvePrimerFaltante(t *testing.T) {
	a := catalog.NewArena(0)
	a.Put(catalog.Node{ID: 3, ParentID: ptr(2), Name: "c", Slug: "c"})

	missing, ok, err := a.MissingAncestor(3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), missing)

	a.Put(catalog.Node{ID: 2, ParentID: ptr(1), Name: "b", Slug: "b"})
	a.Put(catalog.Node{ID: 1, Name: "a", Slug: "a", CategoryType: strPtr("T")})
	_, ok, err = a.MissingAncestor(3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMissingAncestor_CicloDetectado(t *testing.T) {
	a := catalog.NewArena(0)
	a.Put(catalog.Node{ID: 1, ParentID: ptr(1), Name: "x", Slug: "x"})

	_, _, err := a.MissingAncestor(1)
	assert.ErrorIs(t, err, domain.ErrCorruptHierarchy)
}

func TestIsAncestor_DetectaSubarbol(t *testing.T) {
	a := electronicsArena()

	ok, err := a.IsAncestor(1, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.IsAncestor(3, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChildren_DistingueNoConsultadoDeVacio(t *testing.T) {
	a := electronicsArena()

	_, ok := a.Children(3)
	assert.False(t, ok)

	a.SetChildren(3, nil)
	ids, ok := a.Children(3)
	assert.True(t, ok)
	assert.Empty(t, ids)
}
