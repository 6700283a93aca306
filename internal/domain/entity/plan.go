package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan nivel de precios con su referencia al objeto equivalente del proveedor
// de pagos. La sincronización de catálogo lo crea/sobrescribe por completo.
type Plan struct {
	ID              string
	Name            string
	Price           decimal.Decimal // mensual
	ProviderOfferID string          // id de la oferta en el proveedor de pagos
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PlanLimits límites opcionales uno-a-uno con Plan. La ausencia de fila
// significa "sin límites configurados" y es un estado válido, no un error.
// MaxUsers/MaxItems en -1 = ilimitado (preservar tal cual).
type PlanLimits struct {
	PlanID    string
	MaxUsers  int
	MaxItems  int
	Modules   []string // ids de módulos premium habilitados (catálogo cerrado, desconocidos tolerados)
	UpdatedAt time.Time
}

// HasModule informa si el módulo está en el conjunto habilitado.
func (l *PlanLimits) HasModule(id string) bool {
	if l == nil {
		return false
	}
	for _, m := range l.Modules {
		if m == id {
			return true
		}
	}
	return false
}

// ToggleModule agrega o quita el id por prueba de pertenencia.
// Idempotente por id: dos toggles vuelven al estado original.
func (l *PlanLimits) ToggleModule(id string) {
	for i, m := range l.Modules {
		if m == id {
			l.Modules = append(l.Modules[:i], l.Modules[i+1:]...)
			return
		}
	}
	l.Modules = append(l.Modules, id)
}
