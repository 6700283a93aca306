package webhook

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain/entitlement"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// Resultados del procesamiento (cuerpo de la respuesta 200).
const (
	ResultProcessed       = "processed"
	ResultCompanyNotFound = "company_not_found"
)

// webhookSuspendReason motivo que queda en la empresa cuando la suspende la
// ruta de pagos; pertenece al conjunto cerrado de motivos.
const webhookSuspendReason = "Falta de pagamento"

// Processor reconcilia el espejo local de suscripciones y el estado grueso de
// la empresa a partir de un evento de pago normalizado.
type Processor struct {
	companies repository.CompanyRepository
	profiles  repository.ProfileRepository
	subs      repository.SubscriptionRepository
	log       *logger.Logger
}

// NewProcessor crea el procesador de webhooks.
func NewProcessor(
	companies repository.CompanyRepository,
	profiles repository.ProfileRepository,
	subs repository.SubscriptionRepository,
	log *logger.Logger,
) *Processor {
	return &Processor{companies: companies, profiles: profiles, subs: subs, log: log}
}

// Process aplica el evento. Un evento que no resuelve a ninguna empresa se
// acepta igual (el handler responde 200 con company_not_found): el proveedor
// no debe entrar en bucle de reintentos por un tenant no mapeado.
func (p *Processor) Process(ctx context.Context, ev dto.PaymentEvent) (*dto.WebhookResult, error) {
	company, err := p.resolveCompany(ctx, ev)
	if err != nil {
		return nil, err
	}
	if company == nil {
		p.log.Warn().
			Str("customer_id", ev.CustomerID).
			Str("email", ev.Email).
			Str("cnpj", ev.CNPJ).
			Msg("webhook sin empresa resoluble; se reconoce sin procesar")
		return &dto.WebhookResult{Result: ResultCompanyNotFound}, nil
	}

	signal := ev.CurrentStatus
	if signal == "" {
		signal = ev.Event
	}
	status := ClassifyStatus(signal)

	now := time.Now().UTC()
	sub := &entity.Subscription{
		ID:            uuid.New().String(), // solo se usa si el upsert inserta
		CompanyID:     company.ID,
		CNPJ:          company.CNPJ,
		Value:         ev.Value,
		PaymentMethod: ev.PaymentMethod,
		Status:        status,
		FailureReason: ev.FailureReason,
		ProviderID:    ev.SubscriptionID,
		LastAttemptAt: &now,
		UpdatedAt:     now,
	}
	if err := p.subs.Upsert(ctx, sub); err != nil {
		return nil, err
	}

	if err := p.applyCompanyStatus(ctx, company, status); err != nil {
		return nil, err
	}

	return &dto.WebhookResult{
		Result:    ResultProcessed,
		CompanyID: company.ID,
		Status:    status,
	}, nil
}

// resolveCompany cadena de fallback: customer id del proveedor → email de un
// perfil y su empresa vinculada → CNPJ crudo del payload.
func (p *Processor) resolveCompany(ctx context.Context, ev dto.PaymentEvent) (*entity.Company, error) {
	if ev.CustomerID != "" {
		company, err := p.companies.GetByProviderCustomerID(ctx, ev.CustomerID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			return company, nil
		}
	}

	if ev.Email != "" {
		profile, err := p.profiles.GetByEmail(ctx, ev.Email)
		if err != nil {
			return nil, err
		}
		if profile != nil && profile.CompanyID != nil {
			company, err := p.companies.GetByID(ctx, *profile.CompanyID)
			if err != nil {
				return nil, err
			}
			if company != nil {
				return company, nil
			}
		}
	}

	if ev.CNPJ != "" {
		return p.companies.GetByCNPJ(ctx, ev.CNPJ)
	}
	return nil, nil
}

// applyCompanyStatus efecto secundario sobre el estado grueso de la empresa.
// El bypass Partners se aplica también en esta ruta de escritura: una empresa
// partner nunca se suspende por la tubería de pagos.
func (p *Processor) applyCompanyStatus(ctx context.Context, company *entity.Company, subscriptionStatus string) error {
	if company.Plan == entitlement.PartnerPlan {
		p.log.Debug().Str("company_id", company.ID).Msg("plan Partners: se omite el efecto sobre status")
		return nil
	}

	switch {
	case suspendsCompany(subscriptionStatus):
		reason := webhookSuspendReason
		return p.companies.UpdateStatus(ctx, company.ID, string(entitlement.StatusSuspended), &reason)
	case subscriptionStatus == entity.SubscriptionActive:
		return p.companies.UpdateStatus(ctx, company.ID, string(entitlement.StatusActive), nil)
	default:
		// trial no toca el estado grueso de la empresa
		return nil
	}
}
