package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entitlement"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// CompanyUseCase operaciones administrativas sobre empresas (tenants).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	plans     repository.PlanRepository
	audit     *auditor
	log       *logger.Logger
}

// NewCompanyUseCase crea el caso de uso de empresas.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	plans repository.PlanRepository,
	logs repository.ActivityLogRepository,
	profiles repository.ProfileRepository,
	log *logger.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{
		companies: companies,
		plans:     plans,
		audit:     newAuditor(logs, profiles, log),
		log:       log,
	}
}

// Create alta de empresa desde el flujo de invitación del backoffice.
func (uc *CompanyUseCase) Create(ctx context.Context, req dto.CreateCompanyRequest, actor Actor) (*dto.CompanyResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.CNPJ = strings.TrimSpace(req.CNPJ)
	if req.Name == "" || req.CNPJ == "" {
		return nil, fmt.Errorf("%w: nombre y CNPJ son obligatorios", domain.ErrInvalidInput)
	}

	existing, err := uc.companies.GetByCNPJ(ctx, req.CNPJ)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe una empresa con CNPJ %s", domain.ErrDuplicate, req.CNPJ)
	}

	now := time.Now().UTC()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CNPJ:      req.CNPJ,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    string(entitlement.StatusActive),
		Plan:      req.Plan,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	uc.audit.record(ctx, actor, "Empresa criada",
		fmt.Sprintf("Empresa %s (CNPJ %s) criada com plano %s", company.Name, company.CNPJ, company.Plan),
		"empresas", entity.SeveritySuccess)

	return toCompanyResponse(company), nil
}

// GetByID devuelve una empresa con su acceso reconciliado.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List listado paginado con el acceso reconciliado de cada empresa.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	companies, err := uc.companies.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Suspend suspende una empresa. El motivo debe pertenecer al conjunto
// cerrado; un motivo ausente o desconocido rechaza la operación sin mutar
// nada. status y status_reason se escriben juntos.
func (uc *CompanyUseCase) Suspend(ctx context.Context, id, reason string, actor Actor) error {
	if !entitlement.ValidSuspensionReason(reason) {
		return domain.ErrSuspendReasonRequired
	}

	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	if err := uc.companies.UpdateStatus(ctx, id, string(entitlement.StatusSuspended), &reason); err != nil {
		return err
	}

	uc.audit.record(ctx, actor, "Empresa suspensa",
		fmt.Sprintf("Empresa %s suspensa. Motivo: %s", company.Name, reason),
		"empresas", entity.SeverityWarning)
	return nil
}

// Reactivate reactiva una empresa y limpia el motivo de suspensión.
func (uc *CompanyUseCase) Reactivate(ctx context.Context, id string, actor Actor) error {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	if err := uc.companies.UpdateStatus(ctx, id, string(entitlement.StatusActive), nil); err != nil {
		return err
	}

	uc.audit.record(ctx, actor, "Empresa reativada",
		fmt.Sprintf("Empresa %s reativada", company.Name),
		"empresas", entity.SeveritySuccess)
	return nil
}

// ChangePlan cambia el plan de la empresa. El nombre denormalizado y la
// referencia plan_id se escriben siempre juntos.
func (uc *CompanyUseCase) ChangePlan(ctx context.Context, companyID, planID string, actor Actor) error {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("%w: plan %s", domain.ErrNotFound, planID)
	}

	if err := uc.companies.UpdatePlan(ctx, companyID, plan.Name, plan.ID); err != nil {
		return err
	}

	uc.audit.record(ctx, actor, "Plano alterado",
		fmt.Sprintf("Empresa %s movida do plano %s para %s", company.Name, company.Plan, plan.Name),
		"empresas", entity.SeverityInfo)
	return nil
}

// toCompanyResponse mapea la entidad y deriva el acceso efectivo.
func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	reason := ""
	if c.StatusReason != nil {
		reason = *c.StatusReason
	}
	access := entitlement.Reconcile(c.Status, c.Plan, reason)

	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		CNPJ:               c.CNPJ,
		Email:              c.Email,
		Phone:              c.Phone,
		Status:             c.Status,
		StatusReason:       c.StatusReason,
		Plan:               c.Plan,
		PlanID:             c.PlanID,
		ProviderCustomerID: c.ProviderCustomerID,
		AccessEnabled:      access.Enabled,
		AccessLabel:        access.Label,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
