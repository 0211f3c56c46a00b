package entity

import "strings"

// DataType tipo declarado de un atributo; el valor se guarda como texto y se valida contra este tipo.
type DataType string

const (
	DataTypeText    DataType = "TEXT"
	DataTypeNumber  DataType = "NUMBER"
	DataTypeBoolean DataType = "BOOLEAN"
	DataTypeDate    DataType = "DATE"
)

// ParseDataType normaliza y valida un tipo recibido como texto.
func ParseDataType(s string) (DataType, bool) {
	dt := DataType(strings.ToUpper(strings.TrimSpace(s)))
	switch dt {
	case DataTypeText, DataTypeNumber, DataTypeBoolean, DataTypeDate:
		return dt, true
	}
	return "", false
}

// Attribute propiedad tipada que se define una vez y toma un valor por SKU.
type Attribute struct {
	ID       int64
	Name     string
	Code     string // derivado del nombre, único
	DataType DataType
	UOM      string // unidad de medida, opcional
	IsActive bool
	Audit
}
