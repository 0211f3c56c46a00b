// Package catalogtest provee un almacén en memoria que implementa los repositorios del catálogo
// y TxRunner con semántica de snapshot: cada Run trabaja sobre una copia que solo se publica si
// fn devuelve nil. Emula los constraints de la BD (unicidad, CHECK, FK) con los mismos errores de
// dominio que el adaptador PostgreSQL.
package catalogtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

type state struct {
	nextID          int64
	categoryTypes   map[int64]entity.CategoryType
	categories      map[int64]entity.Category
	products        map[int64]entity.Product
	skus            map[int64]entity.Sku
	priceDetails    map[int64]entity.PriceDetail
	attributeValues map[int64]entity.SkuAttributeValue
	attributes      map[int64]entity.Attribute
	pricelists      map[int64]entity.Pricelist
}

func newState() *state {
	return &state{
		categoryTypes:   make(map[int64]entity.CategoryType),
		categories:      make(map[int64]entity.Category),
		products:        make(map[int64]entity.Product),
		skus:            make(map[int64]entity.Sku),
		priceDetails:    make(map[int64]entity.PriceDetail),
		attributeValues: make(map[int64]entity.SkuAttributeValue),
		attributes:      make(map[int64]entity.Attribute),
		pricelists:      make(map[int64]entity.Pricelist),
	}
}

func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copia superficial: los valores son structs y los punteros internos (*int64) nunca se
// modifican en sitio, siempre se reemplazan.
func (s *state) clone() *state {
	return &state{
		nextID:          s.nextID,
		categoryTypes:   cloneMap(s.categoryTypes),
		categories:      cloneMap(s.categories),
		products:        cloneMap(s.products),
		skus:            cloneMap(s.skus),
		priceDetails:    cloneMap(s.priceDetails),
		attributeValues: cloneMap(s.attributeValues),
		attributes:      cloneMap(s.attributes),
		pricelists:      cloneMap(s.pricelists),
	}
}

func (s *state) newID() int64 {
	s.nextID++
	return s.nextID
}

// Store almacén en memoria. Las transacciones se serializan; las lecturas fuera de tx ven el
// último estado confirmado.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   *state
	// failures error a inyectar en una operación de escritura ("PriceDetails.Create", ...).
	failures map[string]error
	commits  int
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{st: newState(), failures: make(map[string]error)}
}

// FailOn hace que la operación op devuelva err (dentro o fuera de una transacción).
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// Commits cantidad de transacciones confirmadas.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Repositories vista fuera de transacción (equivalente al pool).
func (s *Store) Repositories() catalog.Repositories {
	return view{store: s}.repositories()
}

// Run implementa catalog.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(repos catalog.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	work := s.st.clone()
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(view{store: s, tx: work}.repositories()); err != nil {
		return err
	}

	s.mu.Lock()
	s.st = work
	s.commits++
	s.mu.Unlock()
	return nil
}

// view implementa todos los repositorios sobre el estado confirmado (tx nil) o sobre la copia de una tx.
type view struct {
	store *Store
	tx    *state
}

func (v view) repositories() catalog.Repositories {
	return catalog.Repositories{
		CategoryTypes:   categoryTypeRepo{v},
		Categories:      categoryRepo{v},
		Products:        productRepo{v},
		Skus:            skuRepo{v},
		PriceDetails:    priceDetailRepo{v},
		AttributeValues: attributeValueRepo{v},
		Attributes:      attributeRepo{v},
		Pricelists:      pricelistRepo{v},
	}
}

func (v view) read(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.st)
}

func (v view) write(op string, fn func(st *state) error) error {
	v.store.mu.Lock()
	injected := v.store.failures[op]
	v.store.mu.Unlock()
	if injected != nil {
		return injected
	}
	return v.read(fn)
}

func duplicate(constraint string) error {
	return domain.AlreadyExists("", "registro duplicado (constraint %s)", constraint)
}

func checkViolation(constraint string) error {
	return domain.Invalid("", "violación de la regla %s", constraint)
}

func missingFK(constraint string) error {
	return domain.NotFound("", "referencia inexistente (constraint %s)", constraint)
}

func copyID(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func notFoundRow(table string, id int64) error {
	return fmt.Errorf("catalogtest: %s %d: %w", table, id, domain.ErrNotFound)
}
