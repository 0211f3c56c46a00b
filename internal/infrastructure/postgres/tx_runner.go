package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
)

var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos catalog.Repositories) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepositories arma el juego de repositorios del catálogo sobre un Querier (pool o tx).
func NewRepositories(q Querier) catalog.Repositories {
	return catalog.Repositories{
		CategoryTypes:   NewCategoryTypeRepository(q),
		Categories:      NewCategoryRepository(q),
		Products:        NewProductRepository(q),
		Skus:            NewSkuRepository(q),
		PriceDetails:    NewPriceDetailRepository(q),
		AttributeValues: NewSkuAttributeValueRepository(q),
		Attributes:      NewAttributeRepository(q),
		Pricelists:      NewPricelistRepository(q),
	}
}
