package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// DefaultMinimumQuantity cantidad mínima cuando el tramo no la informa.
const DefaultMinimumQuantity = 1

// ValidatePriceTier precio > 0 y cantidad mínima >= 1 (la BD tiene los mismos CHECK).
// La unicidad (sku, pricelist, cantidad) la garantiza solo el constraint de la BD.
func ValidatePriceTier(price decimal.Decimal, minimumQuantity int) error {
	if !price.GreaterThan(decimal.Zero) {
		return domain.Invalid("price_detail", "el precio debe ser mayor que cero (recibido %s)", price.String())
	}
	if minimumQuantity < 1 {
		return domain.Invalid("price_detail", "la cantidad mínima debe ser al menos 1 (recibido %d)", minimumQuantity)
	}
	return nil
}
