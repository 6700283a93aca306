package usecase

import (
	"context"
	"fmt"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// SupportUseCase vista de backoffice sobre los tickets del producto:
// solo listado y cambio de estado, el alta la hace el producto.
type SupportUseCase struct {
	tickets repository.SupportTicketRepository
	audit   *auditor
	log     *logger.Logger
}

// NewSupportUseCase crea el caso de uso de soporte.
func NewSupportUseCase(
	tickets repository.SupportTicketRepository,
	logs repository.ActivityLogRepository,
	profiles repository.ProfileRepository,
	log *logger.Logger,
) *SupportUseCase {
	return &SupportUseCase{
		tickets: tickets,
		audit:   newAuditor(logs, profiles, log),
		log:     log,
	}
}

// List lista tickets, opcionalmente filtrados por estado.
func (uc *SupportUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]dto.TicketResponse, error) {
	page.DefaultPage()
	tickets, err := uc.tickets.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.TicketResponse{
			ID:        t.ID,
			CompanyID: t.CompanyID,
			Subject:   t.Subject,
			Message:   t.Message,
			Status:    t.Status,
			Priority:  t.Priority,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}
	return out, nil
}

// UpdateStatus cambia el estado de un ticket dentro del conjunto cerrado.
func (uc *SupportUseCase) UpdateStatus(ctx context.Context, id, status string, actor Actor) error {
	switch status {
	case entity.TicketOpen, entity.TicketInProgress, entity.TicketResolved, entity.TicketClosed:
	default:
		return fmt.Errorf("%w: estado de ticket desconocido %q", domain.ErrInvalidInput, status)
	}

	ticket, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrNotFound
	}

	if err := uc.tickets.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	uc.audit.record(ctx, actor, "Ticket atualizado",
		fmt.Sprintf("Ticket %q movido para %s", ticket.Subject, status),
		"suporte", entity.SeverityInfo)
	return nil
}
