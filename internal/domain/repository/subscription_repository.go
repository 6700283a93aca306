package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// SubscriptionRepository puerto de persistencia para el espejo de suscripciones.
// La única ruta de escritura es el upsert del webhook (entrega at-least-once:
// nunca insert-only).
type SubscriptionRepository interface {
	// Upsert inserta o actualiza con el CNPJ como clave de conflicto.
	Upsert(ctx context.Context, sub *entity.Subscription) error
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Subscription, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Subscription, error)
}
