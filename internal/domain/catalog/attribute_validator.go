// Package catalog contiene las reglas de dominio del catálogo: validación de valores de atributo
// contra su tipo declarado, regla XOR de la jerarquía, full path sobre un arena de nodos y
// formato del sku_number. Sin dependencias de infraestructura.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// DateLayout formato aceptado para atributos DATE (ISO-8601, solo fecha).
// También se acepta un timestamp RFC 3339 completo.
const DateLayout = "2006-01-02"

var booleanTokens = map[string]struct{}{
	"true":  {},
	"false": {},
}

// ValidateAttributeValue decide si value es estructuralmente válido para el tipo declarado.
// El valor vacío nunca es válido (la columna exige al menos un carácter).
func ValidateAttributeValue(value string, dataType entity.DataType) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	switch dataType {
	case entity.DataTypeText:
		return true
	case entity.DataTypeNumber:
		_, err := decimal.NewFromString(v)
		return err == nil
	case entity.DataTypeBoolean:
		_, ok := booleanTokens[strings.ToLower(v)]
		return ok
	case entity.DataTypeDate:
		if _, err := time.Parse(DateLayout, v); err == nil {
			return true
		}
		_, err := time.Parse(time.RFC3339, v)
		return err == nil
	}
	return false
}

// AttributeValueError valor que no corresponde al tipo del atributo.
type AttributeValueError struct {
	Attribute string
	Value     string
	Expected  entity.DataType
}

func (e AttributeValueError) Error() string {
	return fmt.Sprintf("valor '%s' inválido para el atributo '%s' (se esperaba %s)", e.Value, e.Attribute, e.Expected)
}
