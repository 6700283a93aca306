package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// ActivityFilter filtros del visor de bitácora.
type ActivityFilter struct {
	Module   string
	Severity string
	Limit    int
	Offset   int
}

// ActivityLogRepository puerto append-only de auditoría.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *entity.ActivityLog) error
	List(ctx context.Context, filter ActivityFilter) ([]*entity.ActivityLog, error)
}
