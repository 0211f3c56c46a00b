package entity

// CategoryType clasificación de primer nivel (Electrónica, Alimentos, ...). Nunca es jerárquica.
type CategoryType struct {
	ID       int64
	Name     string
	Slug     string // único
	Sequence int
	IsActive bool
	Audit
}
