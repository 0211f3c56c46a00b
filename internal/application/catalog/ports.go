// Package catalog implementa los casos de uso del catálogo: jerarquía de categorías,
// tipos de categoría y el agregado SKU (tramos de precio y valores de atributo).
// Toda escritura corre en una única transacción vía TxRunner.
package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Repositories repositorios del catálogo atados a un mismo Querier (pool o tx).
type Repositories struct {
	CategoryTypes   repository.CategoryTypeRepository
	Categories      repository.CategoryRepository
	Products        repository.ProductRepository
	Skus            repository.SkuRepository
	PriceDetails    repository.PriceDetailRepository
	AttributeValues repository.SkuAttributeValueRepository
	Attributes      repository.AttributeRepository
	Pricelists      repository.PricelistRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// Cache caché de respuestas de detalle. Las respuestas incluyen full paths y descendientes, así que
// cualquier escritura confirmada invalida todo el contenido.
// Un miss devuelve la generación vigente al momento de leer; Set* escribe bajo esa generación, de modo
// que una respuesta armada antes de una invalidación nunca queda visible después de ella.
type Cache interface {
	GetCategory(ctx context.Context, key string) (*dto.CategoryResponse, int64, bool)
	SetCategory(ctx context.Context, gen int64, key string, v *dto.CategoryResponse)
	GetSku(ctx context.Context, id int64) (*dto.SkuResponse, int64, bool)
	SetSku(ctx context.Context, gen int64, id int64, v *dto.SkuResponse)
	Invalidate(ctx context.Context)
}

// NoGeneration generación devuelta cuando no se pudo leer; Set* la ignora.
const NoGeneration int64 = -1

// NoopCache caché vacío (CACHE_ENABLED=false y tests).
type NoopCache struct{}

func (NoopCache) GetCategory(context.Context, string) (*dto.CategoryResponse, int64, bool) {
	return nil, NoGeneration, false
}
func (NoopCache) SetCategory(context.Context, int64, string, *dto.CategoryResponse) {}
func (NoopCache) GetSku(context.Context, int64) (*dto.SkuResponse, int64, bool) {
	return nil, NoGeneration, false
}
func (NoopCache) SetSku(context.Context, int64, int64, *dto.SkuResponse) {}
func (NoopCache) Invalidate(context.Context) {}

// Options parámetros de los casos de uso.
type Options struct {
	MaxDepth int // 0 = catalog.DefaultMaxDepth
}
