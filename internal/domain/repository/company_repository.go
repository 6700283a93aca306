package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas (tenants).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	GetByProviderCustomerID(ctx context.Context, customerID string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	ListAll(ctx context.Context) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error

	// UpdateStatus escribe status y status_reason juntos (atómico para el
	// llamador). reason nil limpia el motivo. Si la columna status_reason no
	// existe en el esquema en vivo, devuelve domain.ErrSchemaDrift envuelto
	// con la instrucción de migración.
	UpdateStatus(ctx context.Context, id, status string, reason *string) error

	// UpdatePlan escribe plan (nombre) y plan_id siempre juntos para evitar
	// divergencia entre display y referencia.
	UpdatePlan(ctx context.Context, id, planName, planID string) error
}
