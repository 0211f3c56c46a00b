package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Electronics":            "electronics",
		"Teléfonos Móviles 5G":   "telefonos-moviles-5g",
		"  Handset   128GB  ":    "handset-128gb",
		"Niño/Niña -- Ropa":      "nino-nina-ropa",
		"Café & Té":              "cafe-te",
		"":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), in)
	}
}

func TestMake_Determinista(t *testing.T) {
	assert.Equal(t, slug.Make("Handset 128GB"), slug.Make("Handset 128GB"))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "MEMORIA_RAM", slug.Code("Memoria RAM"))
	assert.Equal(t, "LISTA_MAYORISTA", slug.Code("Lista mayorista"))
}
