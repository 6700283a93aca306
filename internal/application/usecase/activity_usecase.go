package usecase

import (
	"context"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// ActivityUseCase visor de la bitácora de auditoría.
type ActivityUseCase struct {
	logs repository.ActivityLogRepository
}

// NewActivityUseCase crea el caso de uso del visor de bitácora.
func NewActivityUseCase(logs repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{logs: logs}
}

// List lista entradas con filtros opcionales por módulo y severidad.
func (uc *ActivityUseCase) List(ctx context.Context, module, severity string, page dto.PageRequest) (*dto.ActivityListResponse, error) {
	page.DefaultPage()
	entries, err := uc.logs.List(ctx, repository.ActivityFilter{
		Module:   module,
		Severity: severity,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ActivityLogResponse{
			ID:        e.ID,
			ActorName: e.ActorName,
			ActorRole: e.ActorRole,
			Action:    e.Action,
			Details:   e.Details,
			Module:    e.Module,
			Severity:  e.Severity,
			CreatedAt: e.CreatedAt,
		})
	}
	return &dto.ActivityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
