package usecase

import (
	"context"
	"fmt"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// BillingAction acciones administrativas sobre la suscripción en el proveedor
// de pagos. El resultado vuelve después por webhook; aquí no se escribe la
// fila local de subscription.
type BillingAction interface {
	ForceCharge(ctx context.Context, providerSubscriptionID string) error
	Block(ctx context.Context, providerSubscriptionID string) error
	Reactivate(ctx context.Context, providerSubscriptionID string) error
}

// SubscriptionUseCase vista de solo lectura del espejo de suscripciones más
// las acciones que se delegan al proveedor.
type SubscriptionUseCase struct {
	subs    repository.SubscriptionRepository
	billing BillingAction
	audit   *auditor
	log     *logger.Logger
}

// NewSubscriptionUseCase crea el caso de uso de suscripciones.
func NewSubscriptionUseCase(
	subs repository.SubscriptionRepository,
	billing BillingAction,
	logs repository.ActivityLogRepository,
	profiles repository.ProfileRepository,
	log *logger.Logger,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		subs:    subs,
		billing: billing,
		audit:   newAuditor(logs, profiles, log),
		log:     log,
	}
}

// List listado paginado del espejo local.
func (uc *SubscriptionUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SubscriptionListResponse, error) {
	page.DefaultPage()
	subs, err := uc.subs.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		items = append(items, toSubscriptionResponse(s))
	}
	return &dto.SubscriptionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ForceBilling dispara un cobro inmediato en el proveedor. No muta la fila
// local: el nuevo estado llega por el siguiente webhook.
func (uc *SubscriptionUseCase) ForceBilling(ctx context.Context, cnpj string, actor Actor) error {
	return uc.providerAction(ctx, cnpj, actor, "Cobrança forçada", uc.billing.ForceCharge)
}

// Block bloquea la suscripción en el proveedor.
func (uc *SubscriptionUseCase) Block(ctx context.Context, cnpj string, actor Actor) error {
	return uc.providerAction(ctx, cnpj, actor, "Assinatura bloqueada", uc.billing.Block)
}

// Reactivate reactiva la suscripción en el proveedor.
func (uc *SubscriptionUseCase) Reactivate(ctx context.Context, cnpj string, actor Actor) error {
	return uc.providerAction(ctx, cnpj, actor, "Assinatura reativada", uc.billing.Reactivate)
}

func (uc *SubscriptionUseCase) providerAction(
	ctx context.Context,
	cnpj string,
	actor Actor,
	action string,
	fn func(ctx context.Context, providerSubscriptionID string) error,
) error {
	sub, err := uc.subs.GetByCNPJ(ctx, cnpj)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	if sub.ProviderID == "" {
		return fmt.Errorf("%w: la suscripción de %s no tiene id en el proveedor", domain.ErrConflict, cnpj)
	}

	if err := fn(ctx, sub.ProviderID); err != nil {
		return err
	}

	uc.audit.record(ctx, actor, action,
		fmt.Sprintf("Ação %q enviada ao provedor para o CNPJ %s", action, cnpj),
		"assinaturas", entity.SeverityWarning)
	return nil
}

func toSubscriptionResponse(s *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		CNPJ:          s.CNPJ,
		Value:         s.Value,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		NextBillingAt: s.NextBillingAt,
		LastAttemptAt: s.LastAttemptAt,
		FailureReason: s.FailureReason,
		UpdatedAt:     s.UpdatedAt,
	}
}
