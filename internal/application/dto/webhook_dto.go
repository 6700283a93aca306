package dto

import "github.com/shopspring/decimal"

// PaymentEvent payload normalizado de un webhook de pagos (integración
// estilo Asaas). Los campos que falten se toleran; la resolución de empresa
// tiene una cadena de fallback (customer id → email → CNPJ crudo).
type PaymentEvent struct {
	Event          string          `json:"event"`
	CurrentStatus  string          `json:"current_status"`
	CustomerID     string          `json:"customer_id"`
	Email          string          `json:"email"`
	CNPJ           string          `json:"cnpj"`
	Value          decimal.Decimal `json:"value"`
	PaymentMethod  string          `json:"payment_method"`
	SubscriptionID string          `json:"subscription_id"`
	FailureReason  string          `json:"failure_reason"`
}

// WebhookResult respuesta del endpoint de webhook. Siempre viaja con HTTP 200
// salvo payload malformado/no autenticado: el proveedor no debe reintentar
// eventos de empresas no mapeadas.
type WebhookResult struct {
	Result    string `json:"result"` // processed | company_not_found | ignored
	CompanyID string `json:"company_id,omitempty"`
	Status    string `json:"status,omitempty"`
}
