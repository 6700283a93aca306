package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/invorya/backoffice-api/internal/application/dto"
)

// stripeSignals traducción de tipos de evento Stripe a la señal que entiende
// ClassifyStatus. Tipos no listados se ignoran.
var stripeSignals = map[stripe.EventType]string{
	"invoice.paid":                         "confirmed",
	"invoice.payment_succeeded":            "confirmed",
	"invoice.payment_failed":               "overdue",
	"customer.subscription.created":        "confirmed",
	"customer.subscription.updated":        "confirmed",
	"customer.subscription.deleted":        "cancelled",
	"customer.subscription.trial_will_end": "trial",
	"charge.refunded":                      "refunded",
}

// ParseStripeEvent verifica la firma del payload (la verificación ES la
// autenticación de este endpoint) y lo traduce al evento normalizado.
// ok=false indica un tipo de evento que no nos interesa.
func ParseStripeEvent(payload []byte, sigHeader, secret string) (ev dto.PaymentEvent, ok bool, err error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, secret)
	if err != nil {
		return dto.PaymentEvent{}, false, fmt.Errorf("firma de webhook inválida: %w", err)
	}

	signal, known := stripeSignals[event.Type]
	if !known {
		return dto.PaymentEvent{}, false, nil
	}
	ev = dto.PaymentEvent{
		Event:         string(event.Type),
		CurrentStatus: signal,
	}

	switch event.Type {
	case "invoice.paid", "invoice.payment_succeeded", "invoice.payment_failed":
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return dto.PaymentEvent{}, false, fmt.Errorf("payload de invoice inválido: %w", err)
		}
		if inv.Customer != nil {
			ev.CustomerID = inv.Customer.ID
			ev.Email = inv.Customer.Email
		}
		ev.Value = decimal.NewFromInt(inv.AmountDue).Div(decimal.NewFromInt(100))
	case "charge.refunded":
		var ch stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
			return dto.PaymentEvent{}, false, fmt.Errorf("payload de charge inválido: %w", err)
		}
		if ch.Customer != nil {
			ev.CustomerID = ch.Customer.ID
		}
		ev.Value = decimal.NewFromInt(ch.Amount).Div(decimal.NewFromInt(100))
	default:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return dto.PaymentEvent{}, false, fmt.Errorf("payload de subscription inválido: %w", err)
		}
		if sub.Customer != nil {
			ev.CustomerID = sub.Customer.ID
		}
		ev.SubscriptionID = sub.ID
		if string(sub.Status) == "trialing" {
			ev.CurrentStatus = "trial"
		}
	}

	return ev, true, nil
}
