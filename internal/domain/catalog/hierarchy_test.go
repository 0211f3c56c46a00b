package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

func ptr(v int64) *int64 { return &v }

func TestValidateHierarchy_ReglaXOR(t *testing.T) {
	// raíz con tipo y hija sin tipo son válidas
	require.NoError(t, catalog.ValidateHierarchy(nil, ptr(1)))
	require.NoError(t, catalog.ValidateHierarchy(ptr(7), nil))

	err := catalog.ValidateHierarchy(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, catalog.MsgRootNeedsType, err.Error())

	err = catalog.ValidateHierarchy(ptr(7), ptr(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, catalog.MsgChildMustNotHaveType, err.Error())
}

func TestValidateNotSelfParent_RechazaPropioPadre(t *testing.T) {
	assert.NoError(t, catalog.ValidateNotSelfParent(3, nil))
	assert.NoError(t, catalog.ValidateNotSelfParent(3, ptr(4)))

	err := catalog.ValidateNotSelfParent(3, ptr(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
