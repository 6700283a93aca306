package entity

import "time"

// Severidades de la bitácora.
const (
	SeverityInfo     = "info"
	SeveritySuccess  = "success"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// ActivityLog entrada append-only de auditoría. No hay ruta de update ni
// delete en operación normal.
type ActivityLog struct {
	ID        string
	ActorName string
	ActorRole string
	Action    string
	Details   string
	Module    string // etiqueta del módulo del backoffice que originó la acción
	Severity  string // ver constantes Severity*
	CreatedAt time.Time
}
