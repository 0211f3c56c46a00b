package entity

// Pricelist lista de precios (colaborador externo); los PriceDetail la referencian.
type Pricelist struct {
	ID          int64
	Name        string
	Code        string
	Description string
	IsActive    bool
	Audit
}
