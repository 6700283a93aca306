package entity

import "time"

// Niveles de permiso por módulo del backoffice.
const (
	PermissionFull = "full"
	PermissionView = "view"
	PermissionNone = "none"
)

// Profile perfil de un miembro del equipo de backoffice o de un usuario del
// producto (cuando CompanyID no es nil). Permissions mapea módulo del
// backoffice → nivel; se persiste como JSONB.
type Profile struct {
	ID          string
	Name        string
	Email       string
	Role        string
	CompanyID   *string // nil para personal interno; vincula usuarios del producto con su empresa
	Permissions map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
