package entity

import "time"

// Roles del personal del backoffice.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// User cuenta de acceso del personal del backoffice (no confundir con los
// usuarios del producto, que viven en profiles).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
