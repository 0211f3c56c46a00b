package entity

// Category representa una categoría de productos dentro de la jerarquía.
// Regla XOR: raíz (ParentID nil) con CategoryTypeID, o hija (ParentID) sin CategoryTypeID.
type Category struct {
	ID             int64
	Name           string
	Slug           string // único global (no por padre)
	Description    string
	CategoryTypeID *int64
	ParentID       *int64
	IsActive       bool
	Sequence       int
	Audit
}

// IsRoot indica si la categoría es de primer nivel.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
