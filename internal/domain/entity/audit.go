package entity

import "time"

// Audit campos de auditoría comunes a todas las tablas del catálogo.
// CreatedBy/UpdatedBy son el id del actor que viene del token (no hay estado global).
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy int64
	UpdatedBy int64
}

// Stamp marca la creación y la última modificación con el mismo actor.
func (a *Audit) Stamp(actorID int64, now time.Time) {
	a.CreatedAt = now
	a.UpdatedAt = now
	a.CreatedBy = actorID
	a.UpdatedBy = actorID
}

// Touch marca solo la última modificación.
func (a *Audit) Touch(actorID int64, now time.Time) {
	a.UpdatedAt = now
	a.UpdatedBy = actorID
}
