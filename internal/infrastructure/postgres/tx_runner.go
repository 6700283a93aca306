package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/application/catalog"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// Ensure TxRunner implementa catalog.TxRunner.
var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCatalogReplace inicia una transacción, ejecuta fn con un PlanRepository
// atado a la tx y hace Commit o Rollback. Lo usa la sincronización de catálogo
// para que el delete-all + insert sea atómico y la tabla de planes nunca quede
// vacía de forma observable.
func (r *TxRunner) RunCatalogReplace(ctx context.Context, fn func(planRepo repository.PlanRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	planRepo := newPlanRepoWithQuerier(tx)

	if err := fn(planRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
