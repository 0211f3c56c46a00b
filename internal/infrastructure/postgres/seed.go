package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

// ReferenceData ids de los colaboradores externos sembrados (proveedor, producto, lista de precios, atributos).
type ReferenceData struct {
	SupplierID  int64
	ProductID   int64
	PricelistID int64
	Attributes  map[string]int64 // por code
}

// DemoAttribute atributo a sembrar.
type DemoAttribute struct {
	Name     string
	DataType entity.DataType
	UOM      string
}

// SeedReferenceData inserta (o reutiliza por slug/code) las filas que el catálogo solo lee.
// Es idempotente: se puede correr varias veces sobre la misma base.
func SeedReferenceData(ctx context.Context, q Querier, categoryID int64, productName, pricelistName string, attrs []DemoAttribute) (*ReferenceData, error) {
	out := &ReferenceData{Attributes: map[string]int64{}}

	err := q.QueryRow(ctx, `
		INSERT INTO suppliers (name, slug) VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, "Proveedor demo", "proveedor-demo").Scan(&out.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("seed supplier: %w", err)
	}

	err = q.QueryRow(ctx, `
		INSERT INTO products (name, slug, category_id, supplier_id) VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET category_id = EXCLUDED.category_id, is_active = TRUE
		RETURNING id`, productName, slug.Make(productName), categoryID, out.SupplierID).Scan(&out.ProductID)
	if err != nil {
		return nil, fmt.Errorf("seed product: %w", err)
	}

	err = q.QueryRow(ctx, `
		INSERT INTO pricelists (name, code) VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET is_active = TRUE
		RETURNING id`, pricelistName, slug.Code(pricelistName)).Scan(&out.PricelistID)
	if err != nil {
		return nil, fmt.Errorf("seed pricelist: %w", err)
	}

	for _, a := range attrs {
		code := slug.Code(a.Name)
		var id int64
		err := q.QueryRow(ctx, `
			INSERT INTO attributes (name, code, data_type, uom) VALUES ($1, $2, $3::attribute_data_type, $4)
			ON CONFLICT (code) DO UPDATE SET is_active = TRUE
			RETURNING id`, a.Name, code, string(a.DataType), a.UOM).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed attribute %s: %w", code, err)
		}
		out.Attributes[code] = id
	}
	return out, nil
}
