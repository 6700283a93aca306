package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// Asegura que ActivityLogRepo implementa repository.ActivityLogRepository.
var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo bitácora append-only sobre PostgreSQL.
type ActivityLogRepo struct {
	db querier
}

// NewActivityLogRepository construye el adaptador de la bitácora.
func NewActivityLogRepository(pool *pgxpool.Pool) *ActivityLogRepo {
	return &ActivityLogRepo{db: pool}
}

// Append agrega una entrada. No hay update ni delete.
func (r *ActivityLogRepo) Append(ctx context.Context, e *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, actor_name, actor_role, action, details, module, severity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.ActorName, e.ActorRole, e.Action, e.Details, e.Module, e.Severity, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append activity log: %w", err)
	}
	return nil
}

// List devuelve entradas filtradas, más recientes primero.
func (r *ActivityLogRepo) List(ctx context.Context, f repository.ActivityFilter) ([]*entity.ActivityLog, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, actor_name, actor_role, action, details, module, severity, created_at
		  FROM activity_logs
		 WHERE ($1 = '' OR module = $1)
		   AND ($2 = '' OR severity = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, f.Module, f.Severity, limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ActivityLog
	for rows.Next() {
		var e entity.ActivityLog
		if err := rows.Scan(&e.ID, &e.ActorName, &e.ActorRole, &e.Action, &e.Details, &e.Module, &e.Severity, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
