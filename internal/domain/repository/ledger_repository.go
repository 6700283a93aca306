package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// LedgerRepository puerto de lectura/escritura del libro de facturas y gastos.
// Las métricas del dashboard se recalculan en cada fetch sobre estas listas
// (sin capa de caché ni mantenimiento incremental).
type LedgerRepository interface {
	ListInvoices(ctx context.Context) ([]*entity.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)
	CreateInvoice(ctx context.Context, inv *entity.Invoice) error

	ListExpenses(ctx context.Context) ([]*entity.Expense, error)
	CreateExpense(ctx context.Context, exp *entity.Expense) error
	ListExpenseCategories(ctx context.Context) ([]*entity.ExpenseCategory, error)
}
