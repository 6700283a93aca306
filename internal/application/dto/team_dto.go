package dto

import "time"

// ProvisionTeamMemberRequest alta de un miembro del equipo de backoffice.
// Description es texto libre; de él se infiere la matriz de permisos por
// palabras clave. Overrides (módulo → nivel) se aplica después de inferir.
type ProvisionTeamMemberRequest struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Description string            `json:"description"`
	Overrides   map[string]string `json:"overrides,omitempty"`
}

// TeamMemberResponse perfil interno con su matriz de permisos.
type TeamMemberResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Permissions map[string]string `json:"permissions"`
	CreatedAt   time.Time         `json:"created_at"`
}
