package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// Asegura que SupportTicketRepo implementa repository.SupportTicketRepository.
var _ repository.SupportTicketRepository = (*SupportTicketRepo)(nil)

// SupportTicketRepo tickets de soporte sobre PostgreSQL.
type SupportTicketRepo struct {
	db querier
}

// NewSupportTicketRepository construye el adaptador de tickets.
func NewSupportTicketRepository(pool *pgxpool.Pool) *SupportTicketRepo {
	return &SupportTicketRepo{db: pool}
}

const ticketColumns = `id, company_id, subject, message, status, priority, created_at, updated_at`

// GetByID obtiene un ticket por ID.
func (r *SupportTicketRepo) GetByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1`
	var t entity.SupportTicket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CompanyID, &t.Subject, &t.Message, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// List devuelve tickets, opcionalmente filtrados por estado.
func (r *SupportTicketRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.SupportTicket, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + ticketColumns + `
		  FROM support_tickets
		 WHERE ($1 = '' OR status = $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupportTicket
	for rows.Next() {
		var t entity.SupportTicket
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Subject, &t.Message, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de un ticket.
func (r *SupportTicketRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE support_tickets SET status = $2, updated_at = now() WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, status); err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}
	return nil
}
