package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionResponse espejo local de la suscripción del proveedor.
type SubscriptionResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	CNPJ          string          `json:"cnpj"`
	Value         decimal.Decimal `json:"value"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	NextBillingAt *time.Time      `json:"next_billing_at,omitempty"`
	LastAttemptAt *time.Time      `json:"last_attempt_at,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SubscriptionListResponse listado paginado.
type SubscriptionListResponse struct {
	Items []SubscriptionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
