package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrDependencyConflict = errors.New("el recurso tiene dependientes activos")
	ErrCorruptHierarchy   = errors.New("jerarquía de categorías corrupta")
)

// DomainError agrega al error sentinela (Kind) la entidad afectada y un mensaje legible para el cliente.
// errors.Is(err, domain.ErrNotFound) sigue funcionando gracias a Unwrap.
type DomainError struct {
	Kind    error
	Entity  string
	Message string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *DomainError) Unwrap() error { return e.Kind }

func newDomainError(kind error, entity, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// NotFound entidad referenciada inexistente o inactiva.
func NotFound(entity, format string, args ...any) *DomainError {
	return newDomainError(ErrNotFound, entity, format, args...)
}

// AlreadyExists violación de unicidad detectada en la aplicación (slug, nombre, sku_number).
func AlreadyExists(entity, format string, args ...any) *DomainError {
	return newDomainError(ErrDuplicate, entity, format, args...)
}

// Invalid violación de una regla estructural (jerarquía, tipo de atributo, formato).
func Invalid(entity, format string, args ...any) *DomainError {
	return newDomainError(ErrInvalidInput, entity, format, args...)
}

// DependencyConflict borrado rechazado porque existen dependientes activos.
func DependencyConflict(entity, format string, args ...any) *DomainError {
	return newDomainError(ErrDependencyConflict, entity, format, args...)
}
