package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// fakes en memoria con la misma semántica (nil, nil) de los repos reales

type memCompanyRepo struct {
	repository.CompanyRepository
	rows map[string]*entity.Company
}

func newMemCompanyRepo(rows ...*entity.Company) *memCompanyRepo {
	m := &memCompanyRepo{rows: map[string]*entity.Company{}}
	for _, r := range rows {
		m.rows[r.ID] = r
	}
	return m
}

func (m *memCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	m.rows[c.ID] = c
	return nil
}

func (m *memCompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return m.rows[id], nil
}

func (m *memCompanyRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	for _, c := range m.rows {
		if c.CNPJ == cnpj {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCompanyRepo) UpdateStatus(ctx context.Context, id, status string, reason *string) error {
	c := m.rows[id]
	c.Status = status
	c.StatusReason = reason
	return nil
}

func (m *memCompanyRepo) UpdatePlan(ctx context.Context, id, planName, planID string) error {
	c := m.rows[id]
	c.Plan = planName
	c.PlanID = &planID
	return nil
}

type memPlanRepo struct {
	repository.PlanRepository
	plans  map[string]*entity.Plan
	limits map[string]*entity.PlanLimits
}

func newMemPlanRepo(plans ...*entity.Plan) *memPlanRepo {
	m := &memPlanRepo{plans: map[string]*entity.Plan{}, limits: map[string]*entity.PlanLimits{}}
	for _, p := range plans {
		m.plans[p.ID] = p
	}
	return m
}

func (m *memPlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	return m.plans[id], nil
}

func (m *memPlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	out := make([]*entity.Plan, 0, len(m.plans))
	for _, p := range m.plans {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPlanRepo) GetLimits(ctx context.Context, planID string) (*entity.PlanLimits, error) {
	return m.limits[planID], nil
}

func (m *memPlanRepo) UpsertLimits(ctx context.Context, l *entity.PlanLimits) error {
	m.limits[l.PlanID] = l
	return nil
}

type memActivityRepo struct {
	repository.ActivityLogRepository
	entries []*entity.ActivityLog
	fail    bool
}

func (m *memActivityRepo) Append(ctx context.Context, e *entity.ActivityLog) error {
	if m.fail {
		return assert.AnError
	}
	m.entries = append(m.entries, e)
	return nil
}

type memProfileRepo struct {
	repository.ProfileRepository
	byEmail map[string]*entity.Profile
}

func (m *memProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return m.byEmail[email], nil
}

func (m *memProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	if m.byEmail == nil {
		m.byEmail = map[string]*entity.Profile{}
	}
	m.byEmail[p.Email] = p
	return nil
}

func (m *memProfileRepo) ListTeam(ctx context.Context) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(m.byEmail))
	for _, p := range m.byEmail {
		if p.CompanyID == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func operador() Actor {
	return Actor{ID: "u1", Name: "Joana Prado", Role: entity.RoleAdmin}
}

func newCompanyUC(companies *memCompanyRepo, plans *memPlanRepo, logs *memActivityRepo) *CompanyUseCase {
	return NewCompanyUseCase(companies, plans, logs, &memProfileRepo{}, quietLogger())
}

func TestSuspend_MotivoInvalidoNoMutaNada(t *testing.T) {
	c := &entity.Company{ID: "c1", Name: "Acme", Status: "Ativo", Plan: "Standard"}
	companies := newMemCompanyRepo(c)
	logs := &memActivityRepo{}
	uc := newCompanyUC(companies, newMemPlanRepo(), logs)

	err := uc.Suspend(context.Background(), "c1", "", operador())
	assert.ErrorIs(t, err, domain.ErrSuspendReasonRequired)

	err = uc.Suspend(context.Background(), "c1", "porque sí", operador())
	assert.ErrorIs(t, err, domain.ErrSuspendReasonRequired)

	assert.Equal(t, "Ativo", c.Status, "el status no debe cambiar")
	assert.Nil(t, c.StatusReason)
	assert.Empty(t, logs.entries, "sin mutación no hay entrada de auditoría")
}

func TestSuspend_EscribeStatusYMotivoJuntos(t *testing.T) {
	c := &entity.Company{ID: "c1", Name: "Acme", Status: "Ativo", Plan: "Standard"}
	companies := newMemCompanyRepo(c)
	logs := &memActivityRepo{}
	uc := newCompanyUC(companies, newMemPlanRepo(), logs)

	err := uc.Suspend(context.Background(), "c1", "Falta de pagamento", operador())

	require.NoError(t, err)
	assert.Equal(t, "Suspenso", c.Status)
	require.NotNil(t, c.StatusReason)
	assert.Equal(t, "Falta de pagamento", *c.StatusReason)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "Joana Prado", logs.entries[0].ActorName)
	assert.Contains(t, logs.entries[0].Details, "Falta de pagamento")
	assert.Equal(t, entity.SeverityWarning, logs.entries[0].Severity)
}

func TestReactivate_LimpiaElMotivo(t *testing.T) {
	reason := "Falta de pagamento"
	c := &entity.Company{ID: "c1", Name: "Acme", Status: "Suspenso", StatusReason: &reason, Plan: "Standard"}
	uc := newCompanyUC(newMemCompanyRepo(c), newMemPlanRepo(), &memActivityRepo{})

	err := uc.Reactivate(context.Background(), "c1", operador())

	require.NoError(t, err)
	assert.Equal(t, "Ativo", c.Status)
	assert.Nil(t, c.StatusReason, "reactivar siempre deja el motivo en null")
}

func TestCicloCompleto_SuspenderYReactivar(t *testing.T) {
	// status null → habilitada; suspender → deshabilitada; reactivar → habilitada.
	c := &entity.Company{ID: "c1", Name: "Acme", Status: "", Plan: "Standard"}
	uc := newCompanyUC(newMemCompanyRepo(c), newMemPlanRepo(), &memActivityRepo{})
	ctx := context.Background()

	resp, err := uc.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, resp.AccessEnabled)

	require.NoError(t, uc.Suspend(ctx, "c1", "Falta de pagamento", operador()))
	resp, err = uc.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, resp.AccessEnabled)
	assert.Equal(t, "Suspenso", resp.AccessLabel)

	require.NoError(t, uc.Reactivate(ctx, "c1", operador()))
	resp, err = uc.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, resp.AccessEnabled)
	assert.Nil(t, resp.StatusReason)
}

func TestGetByID_PartnersSuspensaSigueHabilitada(t *testing.T) {
	c := &entity.Company{ID: "c1", Name: "Sócio", Status: "Suspenso", Plan: "Partners"}
	uc := newCompanyUC(newMemCompanyRepo(c), newMemPlanRepo(), &memActivityRepo{})

	resp, err := uc.GetByID(context.Background(), "c1")

	require.NoError(t, err)
	assert.True(t, resp.AccessEnabled, "bypass Partners incondicional")
	assert.Equal(t, "Suspenso", resp.Status, "el status crudo se muestra tal cual")
}

func TestChangePlan_EscribeNombreYReferenciaJuntos(t *testing.T) {
	c := &entity.Company{ID: "c1", Name: "Acme", Status: "Ativo", Plan: "Essencial"}
	plan := &entity.Plan{ID: "p2", Name: "Premium"}
	uc := newCompanyUC(newMemCompanyRepo(c), newMemPlanRepo(plan), &memActivityRepo{})

	err := uc.ChangePlan(context.Background(), "c1", "p2", operador())

	require.NoError(t, err)
	assert.Equal(t, "Premium", c.Plan)
	require.NotNil(t, c.PlanID)
	assert.Equal(t, "p2", *c.PlanID)
}

func TestChangePlan_PlanInexistente(t *testing.T) {
	c := &entity.Company{ID: "c1", Name: "Acme", Status: "Ativo", Plan: "Essencial"}
	uc := newCompanyUC(newMemCompanyRepo(c), newMemPlanRepo(), &memActivityRepo{})

	err := uc.ChangePlan(context.Background(), "c1", "no-existe", operador())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Essencial", c.Plan, "sin mutación")
}

func TestSuspend_FalloDeAuditoriaNoRevierteLaMutacion(t *testing.T) {
	c := &entity.Company{ID: "c1", Name: "Acme", Status: "Ativo", Plan: "Standard"}
	logs := &memActivityRepo{fail: true}
	uc := newCompanyUC(newMemCompanyRepo(c), newMemPlanRepo(), logs)

	err := uc.Suspend(context.Background(), "c1", "Falta de pagamento", operador())

	require.NoError(t, err, "el fallo del log se degrada a warning")
	assert.Equal(t, "Suspenso", c.Status)
}

func TestCreate_CNPJDuplicado(t *testing.T) {
	existing := &entity.Company{ID: "c1", Name: "Acme", CNPJ: "11222333000144"}
	uc := newCompanyUC(newMemCompanyRepo(existing), newMemPlanRepo(), &memActivityRepo{})

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name: "Otra", CNPJ: "11222333000144",
	}, operador())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
