package dto

import "time"

// TicketResponse vista de backoffice de un ticket de soporte.
type TicketResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateTicketStatusRequest cambio de estado de un ticket.
type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}
