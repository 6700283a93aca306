package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// PlanRepository puerto de persistencia para planes y sus límites.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	GetByID(ctx context.Context, id string) (*entity.Plan, error)
	GetByName(ctx context.Context, name string) (*entity.Plan, error)
	List(ctx context.Context) ([]*entity.Plan, error)

	// DeleteAll vacía la tabla; solo lo usa la sincronización de catálogo
	// dentro de una transacción (reemplazo wholesale).
	DeleteAll(ctx context.Context) error

	// GetLimits devuelve (nil, nil) si el plan no tiene límites configurados:
	// es un estado válido, no un error.
	GetLimits(ctx context.Context, planID string) (*entity.PlanLimits, error)

	// UpsertLimits inserta o actualiza por plan_id. Los valores -1 (ilimitado)
	// se preservan tal cual.
	UpsertLimits(ctx context.Context, limits *entity.PlanLimits) error
}
