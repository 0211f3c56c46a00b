package catalog

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// SkuNumberLength longitud fija del sku_number.
const SkuNumberLength = 10

var skuNumberPattern = regexp.MustCompile(`^[0-9A-F]{10}$`)

// NormalizeSkuNumber pasa a mayúsculas y valida 10 caracteres 0-9A-F.
func NormalizeSkuNumber(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if !skuNumberPattern.MatchString(s) {
		return "", domain.Invalid("sku", "el sku_number '%s' debe tener exactamente %d caracteres 0-9 o A-F", raw, SkuNumberLength)
	}
	return s, nil
}

// NewSkuNumber genera un sku_number por defecto: los primeros 10 hex de un UUID v4 en mayúsculas.
func NewSkuNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:SkuNumberLength])
}
