package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/internal/infrastructure/changefeed"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, cnpj, email, phone, status, status_reason,
	plan, plan_id, provider_customer_id, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// Tras cada escritura exitosa publica la imagen nueva en el changefeed
// (feed puede ser nil, ej. en herramientas de línea de comandos).
type CompanyRepo struct {
	db   querier
	feed *changefeed.Feed
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool, feed *changefeed.Feed) *CompanyRepo {
	return &CompanyRepo{db: pool, feed: feed}
}

func (r *CompanyRepo) publish(action string, c *entity.Company) {
	if r.feed == nil || c == nil {
		return
	}
	r.feed.Publish(changefeed.Event{
		Table:     "companies",
		Action:    action,
		CompanyID: c.ID,
		Row:       c,
	})
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.CNPJ, c.Email, c.Phone, c.Status, c.StatusReason,
		c.Plan, c.PlanID, c.ProviderCustomerID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	r.publish("INSERT", c)
	return nil
}

func (r *CompanyRepo) getBy(ctx context.Context, where string, arg any) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ` + where
	var c entity.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.Email, &c.Phone, &c.Status, &c.StatusReason,
		&c.Plan, &c.PlanID, &c.ProviderCustomerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByCNPJ obtiene una empresa por identificador fiscal.
func (r *CompanyRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	return r.getBy(ctx, "cnpj = $1", cnpj)
}

// GetByProviderCustomerID obtiene una empresa por el id de cliente del proveedor de pagos.
func (r *CompanyRepo) GetByProviderCustomerID(ctx context.Context, customerID string) (*entity.Company, error) {
	if customerID == "" {
		return nil, nil
	}
	return r.getBy(ctx, "provider_customer_id = $1", customerID)
}

// List devuelve empresas con paginación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	return scanCompanies(rows)
}

// ListAll devuelve todas las empresas (agregación de métricas).
func (r *CompanyRepo) ListAll(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all companies: %w", err)
	}
	defer rows.Close()
	return scanCompanies(rows)
}

func scanCompanies(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*entity.Company, error) {
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.CNPJ, &c.Email, &c.Phone, &c.Status, &c.StatusReason,
			&c.Plan, &c.PlanID, &c.ProviderCustomerID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos generales de una empresa (no status ni plan).
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies
		   SET name = $2, cnpj = $3, email = $4, phone = $5,
		       provider_customer_id = $6, updated_at = now()
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.CNPJ, c.Email, c.Phone, c.ProviderCustomerID,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	r.publish("UPDATE", c)
	return nil
}

// UpdateStatus escribe status y status_reason juntos. Si la columna
// status_reason no existe en el esquema en vivo, devuelve ErrSchemaDrift con
// la migración exacta a ejecutar, en vez de un fallo genérico.
func (r *CompanyRepo) UpdateStatus(ctx context.Context, id, status string, reason *string) error {
	query := `
		UPDATE companies SET status = $2, status_reason = $3, updated_at = now()
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, status, reason)
	if err != nil {
		if isUndefinedColumn(err) {
			return fmt.Errorf(
				"%w: falta la columna status/status_reason en companies; ejecute `go run ./cmd/migrate up` (migración 0002_company_status_reason)",
				domain.ErrSchemaDrift,
			)
		}
		return fmt.Errorf("update company status: %w", err)
	}

	if updated, err := r.GetByID(ctx, id); err == nil && updated != nil {
		r.publish("UPDATE", updated)
	}
	return nil
}

// UpdatePlan escribe plan (nombre) y plan_id siempre juntos.
func (r *CompanyRepo) UpdatePlan(ctx context.Context, id, planName, planID string) error {
	query := `
		UPDATE companies SET plan = $2, plan_id = $3, updated_at = now()
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, planName, planID)
	if err != nil {
		return fmt.Errorf("update company plan: %w", err)
	}
	if updated, err := r.GetByID(ctx, id); err == nil && updated != nil {
		r.publish("UPDATE", updated)
	}
	return nil
}
