package catalog

import "github.com/jhoicas/Catalogo-api/internal/domain"

// Mensajes de la regla XOR de la jerarquía.
const (
	MsgRootNeedsType        = "las categorías raíz deben tener un tipo de categoría"
	MsgChildMustNotHaveType = "las categorías hijas no deben tener tipo de categoría"
	MsgSelfParent           = "una categoría no puede ser su propio padre"
)

// ValidateHierarchy aplica la regla XOR: exactamente uno de parentID / categoryTypeID.
// En actualizaciones se debe llamar con la vista combinada (patch sobre valores guardados).
func ValidateHierarchy(parentID, categoryTypeID *int64) error {
	if parentID == nil && categoryTypeID == nil {
		return domain.Invalid("category", MsgRootNeedsType)
	}
	if parentID != nil && categoryTypeID != nil {
		return domain.Invalid("category", MsgChildMustNotHaveType)
	}
	return nil
}

// ValidateNotSelfParent rechaza id == parent_id. Los ciclos largos se vigilan en el Arena.
func ValidateNotSelfParent(id int64, parentID *int64) error {
	if parentID != nil && *parentID == id {
		return domain.Invalid("category", MsgSelfParent)
	}
	return nil
}
