package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados locales de suscripción (espejo denormalizado del proveedor de pagos).
const (
	SubscriptionActive    = "active"
	SubscriptionOverdue   = "overdue"
	SubscriptionBlocked   = "blocked"
	SubscriptionTrial     = "trial"
	SubscriptionCancelled = "cancelled"
)

// Subscription una fila por empresa, clave de conflicto: CNPJ.
// La escribe exclusivamente la ruta de webhooks (upsert, nunca insert-only);
// el panel admin solo la lee y dispara acciones que vuelven por webhook.
type Subscription struct {
	ID            string
	CompanyID     string
	CNPJ          string
	Value         decimal.Decimal
	PaymentMethod string // boleto, pix, credit_card...
	Status        string // ver constantes Subscription*
	NextBillingAt *time.Time
	LastAttemptAt *time.Time
	FailureReason string
	ProviderID    string // id de la suscripción en el proveedor
	UpdatedAt     time.Time
}
