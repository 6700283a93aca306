package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados cerrados de factura.
const (
	InvoicePaid    = "paid"
	InvoiceOpen    = "open"
	InvoiceOverdue = "overdue"
	InvoiceVoid    = "void"
)

// Invoice fila plana del libro de ingresos; solo alimenta métricas agregadas.
type Invoice struct {
	ID        string
	CompanyID string
	Amount    decimal.Decimal
	Status    string // ver constantes Invoice*
	DueDate   time.Time
	PaidAt    *time.Time
	CreatedAt time.Time
}

// Expense fila plana del libro de gastos.
// IsCAC marca los gastos de adquisición (numerador del CAC).
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CategoryID  *string
	IsCAC       bool
	CreatedAt   time.Time
}

// ExpenseCategory categoría de gasto.
type ExpenseCategory struct {
	ID   string
	Name string
}
