package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// Asegura que LedgerRepo implementa repository.LedgerRepository.
var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo facturas y gastos sobre PostgreSQL.
type LedgerRepo struct {
	db querier
}

// NewLedgerRepository construye el adaptador de persistencia del libro contable.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{db: pool}
}

// ListInvoices devuelve todas las facturas (agregación de métricas).
func (r *LedgerRepo) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	query := `SELECT id, company_id, amount, status, due_date, paid_at, created_at FROM invoices`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.Amount, &inv.Status, &inv.DueDate, &inv.PaidAt, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetInvoice obtiene una factura por ID.
func (r *LedgerRepo) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT id, company_id, amount, status, due_date, paid_at, created_at FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.Amount, &inv.Status, &inv.DueDate, &inv.PaidAt, &inv.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// CreateInvoice persiste una factura.
func (r *LedgerRepo) CreateInvoice(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, company_id, amount, status, due_date, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		inv.ID, inv.CompanyID, inv.Amount, inv.Status, inv.DueDate, inv.PaidAt, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// ListExpenses devuelve todos los gastos.
func (r *LedgerRepo) ListExpenses(ctx context.Context) ([]*entity.Expense, error) {
	query := `SELECT id, description, amount, date, category_id, is_cac, created_at FROM expenses`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.CategoryID, &e.IsCAC, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CreateExpense persiste un gasto.
func (r *LedgerRepo) CreateExpense(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, description, amount, date, category_id, is_cac, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Description, e.Amount, e.Date, e.CategoryID, e.IsCAC, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// ListExpenseCategories devuelve las categorías de gasto.
func (r *LedgerRepo) ListExpenseCategories(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM expense_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
