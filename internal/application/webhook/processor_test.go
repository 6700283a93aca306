package webhook

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

func TestClassifyStatus_TablaDeSenales(t *testing.T) {
	cases := []struct {
		signal string
		want   string
	}{
		{"PAYMENT_PENDING", entity.SubscriptionOverdue},
		{"payment_late", entity.SubscriptionOverdue},
		{"OVERDUE", entity.SubscriptionOverdue},
		{"subscription_canceled", entity.SubscriptionCancelled},
		{"cancelled", entity.SubscriptionCancelled},
		{"trial_started", entity.SubscriptionTrial},
		{"account_blocked", entity.SubscriptionBlocked},
		{"payment_refunded", entity.SubscriptionBlocked},
		{"PAYMENT_CONFIRMED", entity.SubscriptionActive},
		{"payment_received", entity.SubscriptionActive},
		{"algo_desconocido", entity.SubscriptionActive},
		{"", entity.SubscriptionActive},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStatus(tc.signal), "señal %q", tc.signal)
	}
}

func TestClassifyStatus_PendingGanaACancel(t *testing.T) {
	// Las reglas se evalúan en orden: la primera que matchea gana.
	assert.Equal(t, entity.SubscriptionOverdue, ClassifyStatus("pending_cancel"))
}

// fakes en memoria

type memCompanies struct {
	repository.CompanyRepository
	byProvider map[string]*entity.Company
	byCNPJ     map[string]*entity.Company
	byID       map[string]*entity.Company
	statusLog  []string // "id:status:reason"
}

func (m *memCompanies) GetByProviderCustomerID(ctx context.Context, id string) (*entity.Company, error) {
	return m.byProvider[id], nil
}
func (m *memCompanies) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	return m.byCNPJ[cnpj], nil
}
func (m *memCompanies) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return m.byID[id], nil
}
func (m *memCompanies) UpdateStatus(ctx context.Context, id, status string, reason *string) error {
	r := ""
	if reason != nil {
		r = *reason
	}
	m.statusLog = append(m.statusLog, id+":"+status+":"+r)
	return nil
}

type memProfiles struct {
	repository.ProfileRepository
	byEmail map[string]*entity.Profile
}

func (m *memProfiles) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return m.byEmail[email], nil
}

type memSubs struct {
	repository.SubscriptionRepository
	byCNPJ map[string]*entity.Subscription
}

func (m *memSubs) Upsert(ctx context.Context, sub *entity.Subscription) error {
	if m.byCNPJ == nil {
		m.byCNPJ = map[string]*entity.Subscription{}
	}
	if existing, ok := m.byCNPJ[sub.CNPJ]; ok {
		// misma fila, campos actualizados: conserva el id original
		sub.ID = existing.ID
	}
	m.byCNPJ[sub.CNPJ] = sub
	return nil
}

func newProcessor(companies *memCompanies, profiles *memProfiles, subs *memSubs) *Processor {
	return NewProcessor(companies, profiles, subs,
		logger.New(logger.Config{Env: "production", Level: "error"}))
}

func company(id, cnpj, plan string) *entity.Company {
	return &entity.Company{ID: id, CNPJ: cnpj, Plan: plan, Status: "Ativo"}
}

func TestProcess_ResuelvePorCustomerIDYSuspende(t *testing.T) {
	c := company("c1", "11222333000144", "Standard")
	companies := &memCompanies{byProvider: map[string]*entity.Company{"cus_9": c}}
	subs := &memSubs{}
	p := newProcessor(companies, &memProfiles{}, subs)

	res, err := p.Process(context.Background(), dto.PaymentEvent{
		CustomerID:    "cus_9",
		CurrentStatus: "overdue",
		Value:         decimal.NewFromInt(120),
	})

	require.NoError(t, err)
	assert.Equal(t, ResultProcessed, res.Result)
	assert.Equal(t, entity.SubscriptionOverdue, res.Status)
	require.Contains(t, subs.byCNPJ, "11222333000144")
	require.Len(t, companies.statusLog, 1)
	assert.Equal(t, "c1:Suspenso:Falta de pagamento", companies.statusLog[0])
}

func TestProcess_FallbackEmailYLuegoCNPJ(t *testing.T) {
	companyID := "c2"
	c := company(companyID, "99888777000166", "Standard")
	companies := &memCompanies{
		byProvider: map[string]*entity.Company{},
		byID:       map[string]*entity.Company{companyID: c},
		byCNPJ:     map[string]*entity.Company{"99888777000166": c},
	}
	profiles := &memProfiles{byEmail: map[string]*entity.Profile{
		"dono@empresa.com": {ID: "p1", CompanyID: &companyID},
	}}
	subs := &memSubs{}
	p := newProcessor(companies, profiles, subs)

	// por email → perfil → empresa
	res, err := p.Process(context.Background(), dto.PaymentEvent{
		Email:         "dono@empresa.com",
		CurrentStatus: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, companyID, res.CompanyID)

	// por CNPJ crudo
	res, err = p.Process(context.Background(), dto.PaymentEvent{
		CNPJ:          "99888777000166",
		CurrentStatus: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, companyID, res.CompanyID)
}

func TestProcess_EmpresaNoResolubleRespondeNotFoundSinEscribir(t *testing.T) {
	companies := &memCompanies{byProvider: map[string]*entity.Company{}}
	subs := &memSubs{}
	p := newProcessor(companies, &memProfiles{}, subs)

	res, err := p.Process(context.Background(), dto.PaymentEvent{
		CustomerID:    "cus_inexistente",
		CurrentStatus: "overdue",
	})

	require.NoError(t, err, "no debe fallar: el proveedor no debe reintentar")
	assert.Equal(t, ResultCompanyNotFound, res.Result)
	assert.Empty(t, subs.byCNPJ, "no se crea ni altera ninguna suscripción")
	assert.Empty(t, companies.statusLog)
}

func TestProcess_MismoPayloadDosVecesEsIdempotente(t *testing.T) {
	c := company("c1", "11222333000144", "Standard")
	companies := &memCompanies{byProvider: map[string]*entity.Company{"cus_1": c}}
	subs := &memSubs{}
	p := newProcessor(companies, &memProfiles{}, subs)

	ev := dto.PaymentEvent{
		CustomerID:    "cus_1",
		CurrentStatus: "confirmed",
		Value:         decimal.NewFromInt(99),
	}
	_, err := p.Process(context.Background(), ev)
	require.NoError(t, err)
	first := subs.byCNPJ["11222333000144"]

	_, err = p.Process(context.Background(), ev)
	require.NoError(t, err)

	require.Len(t, subs.byCNPJ, 1, "upsert, nunca fila duplicada")
	second := subs.byCNPJ["11222333000144"]
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Status, second.Status)
}

func TestProcess_PartnersOmiteElEfectoSobreLaEmpresa(t *testing.T) {
	c := company("c1", "11222333000144", "Partners")
	companies := &memCompanies{byProvider: map[string]*entity.Company{"cus_1": c}}
	subs := &memSubs{}
	p := newProcessor(companies, &memProfiles{}, subs)

	res, err := p.Process(context.Background(), dto.PaymentEvent{
		CustomerID:    "cus_1",
		CurrentStatus: "blocked",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionBlocked, res.Status)
	assert.Contains(t, subs.byCNPJ, "11222333000144", "el espejo de suscripción sí se actualiza")
	assert.Empty(t, companies.statusLog, "el status de la empresa no se toca")
}

func TestProcess_ConfirmadoReactivaLaEmpresa(t *testing.T) {
	c := company("c1", "11222333000144", "Standard")
	c.Status = "Suspenso"
	companies := &memCompanies{byProvider: map[string]*entity.Company{"cus_1": c}}
	p := newProcessor(companies, &memProfiles{}, &memSubs{})

	_, err := p.Process(context.Background(), dto.PaymentEvent{
		CustomerID:    "cus_1",
		CurrentStatus: "PAYMENT_CONFIRMED",
	})

	require.NoError(t, err)
	require.Len(t, companies.statusLog, 1)
	assert.Equal(t, "c1:Ativo:", companies.statusLog[0], "reactivar limpia el motivo")
}

func TestProcess_TrialNoTocaElEstadoDeLaEmpresa(t *testing.T) {
	c := company("c1", "11222333000144", "Standard")
	companies := &memCompanies{byProvider: map[string]*entity.Company{"cus_1": c}}
	p := newProcessor(companies, &memProfiles{}, &memSubs{})

	_, err := p.Process(context.Background(), dto.PaymentEvent{
		CustomerID:    "cus_1",
		CurrentStatus: "trial_started",
	})

	require.NoError(t, err)
	assert.Empty(t, companies.statusLog)
}
