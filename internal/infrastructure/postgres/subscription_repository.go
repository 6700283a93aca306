package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/internal/infrastructure/changefeed"
)

// Asegura que SubscriptionRepo implementa repository.SubscriptionRepository.
var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

const subscriptionColumns = `id, company_id, cnpj, value, payment_method, status,
	next_billing_at, last_attempt_at, failure_reason, provider_id, updated_at`

// SubscriptionRepo implementación del puerto SubscriptionRepository sobre PostgreSQL.
type SubscriptionRepo struct {
	db   querier
	feed *changefeed.Feed
}

// NewSubscriptionRepository construye el adaptador de persistencia para suscripciones.
func NewSubscriptionRepository(pool *pgxpool.Pool, feed *changefeed.Feed) *SubscriptionRepo {
	return &SubscriptionRepo{db: pool, feed: feed}
}

// Upsert inserta o actualiza con el CNPJ como clave de conflicto. Entrega
// at-least-once del webhook: reenviar el mismo evento produce la misma fila.
func (r *SubscriptionRepo) Upsert(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (` + subscriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (cnpj) DO UPDATE
		   SET company_id      = EXCLUDED.company_id,
		       value           = EXCLUDED.value,
		       payment_method  = EXCLUDED.payment_method,
		       status          = EXCLUDED.status,
		       next_billing_at = EXCLUDED.next_billing_at,
		       last_attempt_at = EXCLUDED.last_attempt_at,
		       failure_reason  = EXCLUDED.failure_reason,
		       provider_id     = EXCLUDED.provider_id,
		       updated_at      = now()`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.CompanyID, s.CNPJ, s.Value, s.PaymentMethod, s.Status,
		s.NextBillingAt, s.LastAttemptAt, s.FailureReason, s.ProviderID,
	)
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	if r.feed != nil {
		r.feed.Publish(changefeed.Event{
			Table:     "subscriptions",
			Action:    "UPDATE",
			CompanyID: s.CompanyID,
			Row:       s,
		})
	}
	return nil
}

// GetByCNPJ obtiene la suscripción de una empresa por identificador fiscal.
func (r *SubscriptionRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE cnpj = $1`
	var s entity.Subscription
	err := r.db.QueryRow(ctx, query, cnpj).Scan(
		&s.ID, &s.CompanyID, &s.CNPJ, &s.Value, &s.PaymentMethod, &s.Status,
		&s.NextBillingAt, &s.LastAttemptAt, &s.FailureReason, &s.ProviderID, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// List devuelve suscripciones con paginación.
func (r *SubscriptionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Subscription
	for rows.Next() {
		var s entity.Subscription
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.CNPJ, &s.Value, &s.PaymentMethod, &s.Status,
			&s.NextBillingAt, &s.LastAttemptAt, &s.FailureReason, &s.ProviderID, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
