package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// SupportTicketRepository puerto de lectura/actualización de tickets.
// El backoffice no crea tickets; los crea el producto.
type SupportTicketRepository interface {
	GetByID(ctx context.Context, id string) (*entity.SupportTicket, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.SupportTicket, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
