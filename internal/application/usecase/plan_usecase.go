package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entitlement"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// PlanUseCase lectura de planes y edición de límites/módulos.
type PlanUseCase struct {
	plans repository.PlanRepository
	audit *auditor
	log   *logger.Logger
}

// NewPlanUseCase crea el caso de uso de planes.
func NewPlanUseCase(
	plans repository.PlanRepository,
	logs repository.ActivityLogRepository,
	profiles repository.ProfileRepository,
	log *logger.Logger,
) *PlanUseCase {
	return &PlanUseCase{
		plans: plans,
		audit: newAuditor(logs, profiles, log),
		log:   log,
	}
}

// List devuelve los planes con sus límites. Un plan sin fila de límites es
// válido: Limits viaja nil.
func (uc *PlanUseCase) List(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := uc.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		resp := dto.PlanResponse{
			ID:              p.ID,
			Name:            p.Name,
			Price:           p.Price,
			ProviderOfferID: p.ProviderOfferID,
			CreatedAt:       p.CreatedAt,
		}
		limits, err := uc.plans.GetLimits(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if limits != nil {
			resp.Limits = &dto.PlanLimitsResponse{
				MaxUsers: limits.MaxUsers,
				MaxItems: limits.MaxItems,
				Modules:  limits.Modules,
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

// UpsertLimits inserta o actualiza los límites del plan. El centinela -1
// (ilimitado) se preserva tal cual, nunca se convierte a un finito grande.
// Ids de módulo desconocidos se toleran (solo se loguean).
func (uc *PlanUseCase) UpsertLimits(ctx context.Context, planID string, req dto.UpsertPlanLimitsRequest, actor Actor) error {
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrNotFound
	}

	if req.MaxUsers < entitlement.UnlimitedSentinel || req.MaxItems < entitlement.UnlimitedSentinel {
		return fmt.Errorf("%w: los límites solo admiten -1 (ilimitado) o valores no negativos", domain.ErrInvalidInput)
	}

	for _, m := range req.Modules {
		if !entitlement.KnownPremiumModule(m) {
			uc.log.Warn().Str("plan_id", planID).Str("module", m).Msg("módulo desconocido en límites de plan; se conserva")
		}
	}

	limits := &entity.PlanLimits{
		PlanID:    planID,
		MaxUsers:  req.MaxUsers,
		MaxItems:  req.MaxItems,
		Modules:   req.Modules,
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.plans.UpsertLimits(ctx, limits); err != nil {
		return err
	}

	uc.audit.record(ctx, actor, "Limites do plano atualizados",
		fmt.Sprintf("Plano %s: max_users=%d, max_items=%d, módulos=[%s]",
			plan.Name, req.MaxUsers, req.MaxItems, strings.Join(req.Modules, ", ")),
		"planos", entity.SeverityInfo)
	return nil
}

// ToggleModule agrega o quita un módulo premium del plan por prueba de
// pertenencia; dos toggles seguidos vuelven al estado original. Si el plan
// aún no tiene fila de límites, se crea una sin topes (-1/-1).
func (uc *PlanUseCase) ToggleModule(ctx context.Context, planID, moduleID string, actor Actor) (*dto.PlanLimitsResponse, error) {
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(moduleID) == "" {
		return nil, fmt.Errorf("%w: module_id vacío", domain.ErrInvalidInput)
	}

	limits, err := uc.plans.GetLimits(ctx, planID)
	if err != nil {
		return nil, err
	}
	if limits == nil {
		limits = &entity.PlanLimits{
			PlanID:   planID,
			MaxUsers: entitlement.UnlimitedSentinel,
			MaxItems: entitlement.UnlimitedSentinel,
		}
	}

	limits.ToggleModule(moduleID)
	limits.UpdatedAt = time.Now().UTC()
	if err := uc.plans.UpsertLimits(ctx, limits); err != nil {
		return nil, err
	}

	state := "habilitado"
	if !limits.HasModule(moduleID) {
		state = "desabilitado"
	}
	uc.audit.record(ctx, actor, "Módulo do plano alternado",
		fmt.Sprintf("Plano %s: módulo %s %s", plan.Name, moduleID, state),
		"planos", entity.SeverityInfo)

	return &dto.PlanLimitsResponse{
		MaxUsers: limits.MaxUsers,
		MaxItems: limits.MaxItems,
		Modules:  limits.Modules,
	}, nil
}
