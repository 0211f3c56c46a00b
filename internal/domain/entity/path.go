package entity

// PathKind discrimina los elementos del full path.
type PathKind string

const (
	PathKindCategory PathKind = "Category"
	PathKindProduct  PathKind = "Product"
	PathKindSKU      PathKind = "SKU"
)

// PathItem elemento del breadcrumb raíz→hoja. CategoryType solo viene informado en la
// categoría que tiene el tipo directamente (la raíz); no se hereda entre saltos.
type PathItem struct {
	Name         string
	Slug         string
	CategoryType *string
	SkuNumber    string
	Kind         PathKind
}
