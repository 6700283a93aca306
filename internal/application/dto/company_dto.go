package dto

import "time"

// CreateCompanyRequest alta de empresa desde el flujo de invitación admin.
type CreateCompanyRequest struct {
	Name  string `json:"name"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Plan  string `json:"plan"`
}

// SuspendCompanyRequest suspensión con motivo del conjunto cerrado.
type SuspendCompanyRequest struct {
	Reason string `json:"reason"`
}

// ChangePlanRequest cambio de plan de una empresa.
type ChangePlanRequest struct {
	PlanID string `json:"plan_id"`
}

// CompanyResponse representación de una empresa con su acceso reconciliado.
type CompanyResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	CNPJ               string    `json:"cnpj"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Status             string    `json:"status"`
	StatusReason       *string   `json:"status_reason,omitempty"`
	Plan               string    `json:"plan"`
	PlanID             *string   `json:"plan_id,omitempty"`
	ProviderCustomerID string    `json:"provider_customer_id,omitempty"`
	AccessEnabled      bool      `json:"access_enabled"`
	AccessLabel        string    `json:"access_label"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
