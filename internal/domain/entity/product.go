package entity

// Product colaborador externo: dueño de los SKUs, pertenece a una categoría y a un proveedor.
// El catálogo solo lo lee (existencia, estado y datos para el full path).
type Product struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CategoryID  int64
	SupplierID  int64
	IsActive    bool
	Audit
}
