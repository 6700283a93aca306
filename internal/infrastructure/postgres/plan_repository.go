package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// Asegura que PlanRepo implementa repository.PlanRepository.
var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	db querier
}

// NewPlanRepository construye el adaptador de persistencia para planes.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepo {
	return &PlanRepo{db: pool}
}

// newPlanRepoWithQuerier ata el repo a una tx (reemplazo de catálogo).
func newPlanRepoWithQuerier(q querier) *PlanRepo {
	return &PlanRepo{db: q}
}

// Create persiste un plan.
func (r *PlanRepo) Create(ctx context.Context, p *entity.Plan) error {
	query := `
		INSERT INTO plans (id, name, price, provider_offer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Price, p.ProviderOfferID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (r *PlanRepo) getBy(ctx context.Context, where string, arg any) (*entity.Plan, error) {
	query := `SELECT id, name, price, provider_offer_id, created_at, updated_at FROM plans WHERE ` + where
	var p entity.Plan
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Price, &p.ProviderOfferID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un plan por ID.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByName obtiene un plan por nombre.
func (r *PlanRepo) GetByName(ctx context.Context, name string) (*entity.Plan, error) {
	return r.getBy(ctx, "name = $1", name)
}

// List devuelve todos los planes ordenados por precio.
func (r *PlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	query := `SELECT id, name, price, provider_offer_id, created_at, updated_at FROM plans ORDER BY price`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ProviderOfferID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DeleteAll vacía la tabla de planes (solo dentro del reemplazo de catálogo).
func (r *PlanRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM plans`); err != nil {
		return fmt.Errorf("delete all plans: %w", err)
	}
	return nil
}

// GetLimits devuelve los límites del plan, o (nil, nil) si no hay fila:
// "sin límites configurados" es un estado válido.
func (r *PlanRepo) GetLimits(ctx context.Context, planID string) (*entity.PlanLimits, error) {
	query := `SELECT plan_id, max_users, max_items, modules, updated_at FROM plan_limits WHERE plan_id = $1`
	var l entity.PlanLimits
	err := r.db.QueryRow(ctx, query, planID).Scan(
		&l.PlanID, &l.MaxUsers, &l.MaxItems, &l.Modules, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan limits: %w", err)
	}
	return &l, nil
}

// UpsertLimits inserta o actualiza por plan_id. El centinela -1 pasa intacto.
func (r *PlanRepo) UpsertLimits(ctx context.Context, l *entity.PlanLimits) error {
	query := `
		INSERT INTO plan_limits (plan_id, max_users, max_items, modules, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (plan_id) DO UPDATE
		   SET max_users = EXCLUDED.max_users,
		       max_items = EXCLUDED.max_items,
		       modules   = EXCLUDED.modules,
		       updated_at = now()`
	if _, err := r.db.Exec(ctx, query, l.PlanID, l.MaxUsers, l.MaxItems, l.Modules); err != nil {
		return fmt.Errorf("upsert plan limits: %w", err)
	}
	return nil
}
