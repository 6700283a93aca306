// Package webhook procesa las notificaciones asíncronas del ciclo de vida de
// pagos. Entrega at-least-once: todas las escrituras son upsert/idempotentes.
package webhook

import (
	"strings"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// ClassifyStatus mapea la señal cruda del proveedor (evento o estado) al
// estado local de suscripción. Búsqueda por substring, en orden: la primera
// regla que matchea gana; lo no reconocido cae en "confirmado" → active.
func ClassifyStatus(signal string) string {
	s := strings.ToLower(signal)
	switch {
	case containsOne(s, "pending", "late", "overdue"):
		return entity.SubscriptionOverdue
	case strings.Contains(s, "cancel"):
		return entity.SubscriptionCancelled
	case strings.Contains(s, "trial"):
		return entity.SubscriptionTrial
	case containsOne(s, "block", "refund"):
		return entity.SubscriptionBlocked
	default:
		return entity.SubscriptionActive
	}
}

func containsOne(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// suspendsCompany estados de suscripción que apagan el acceso de la empresa.
func suspendsCompany(subscriptionStatus string) bool {
	switch subscriptionStatus {
	case entity.SubscriptionOverdue, entity.SubscriptionBlocked, entity.SubscriptionCancelled:
		return true
	}
	return false
}
