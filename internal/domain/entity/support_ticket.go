package entity

import "time"

// Estados de ticket de soporte.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// SupportTicket vista de backoffice sobre los tickets abiertos desde el
// producto; aquí solo se listan y se les cambia el estado.
type SupportTicket struct {
	ID        string
	CompanyID string
	Subject   string
	Message   string
	Status    string // ver constantes Ticket*
	Priority  string // low | normal | high
	CreatedAt time.Time
	UpdatedAt time.Time
}
