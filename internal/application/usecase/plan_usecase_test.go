package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entitlement"
	"github.com/invorya/backoffice-api/internal/domain/entity"
)

func newPlanUC(plans *memPlanRepo) *PlanUseCase {
	return NewPlanUseCase(plans, &memActivityRepo{}, &memProfileRepo{}, quietLogger())
}

func TestUpsertLimits_PreservaElCentinelaIlimitado(t *testing.T) {
	plans := newMemPlanRepo(&entity.Plan{ID: "p1", Name: "Premium"})
	uc := newPlanUC(plans)

	err := uc.UpsertLimits(context.Background(), "p1", dto.UpsertPlanLimitsRequest{
		MaxUsers: entitlement.UnlimitedSentinel,
		MaxItems: 500,
		Modules:  []string{entitlement.ModuleAPIAccess},
	}, operador())

	require.NoError(t, err)
	got := plans.limits["p1"]
	require.NotNil(t, got)
	assert.Equal(t, -1, got.MaxUsers, "el -1 se preserva tal cual, nunca se convierte")
	assert.Equal(t, 500, got.MaxItems)
}

func TestUpsertLimits_RechazaValoresMenoresQueElCentinela(t *testing.T) {
	plans := newMemPlanRepo(&entity.Plan{ID: "p1", Name: "Premium"})
	uc := newPlanUC(plans)

	err := uc.UpsertLimits(context.Background(), "p1", dto.UpsertPlanLimitsRequest{
		MaxUsers: -2,
		MaxItems: 10,
	}, operador())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsertLimits_ModuloDesconocidoSeTolera(t *testing.T) {
	plans := newMemPlanRepo(&entity.Plan{ID: "p1", Name: "Premium"})
	uc := newPlanUC(plans)

	err := uc.UpsertLimits(context.Background(), "p1", dto.UpsertPlanLimitsRequest{
		MaxUsers: 5,
		MaxItems: 100,
		Modules:  []string{"modulo-del-futuro"},
	}, operador())

	require.NoError(t, err, "ids desconocidos son inertes pero tolerados")
	assert.Contains(t, plans.limits["p1"].Modules, "modulo-del-futuro")
}

func TestToggleModule_DosVecesVuelveAlEstadoOriginal(t *testing.T) {
	plans := newMemPlanRepo(&entity.Plan{ID: "p1", Name: "Premium"})
	plans.limits["p1"] = &entity.PlanLimits{
		PlanID:   "p1",
		MaxUsers: 10,
		MaxItems: 100,
		Modules:  []string{entitlement.ModuleNFe},
	}
	uc := newPlanUC(plans)
	ctx := context.Background()

	resp, err := uc.ToggleModule(ctx, "p1", entitlement.ModuleBackup, operador())
	require.NoError(t, err)
	assert.Contains(t, resp.Modules, entitlement.ModuleBackup)

	resp, err = uc.ToggleModule(ctx, "p1", entitlement.ModuleBackup, operador())
	require.NoError(t, err)
	assert.NotContains(t, resp.Modules, entitlement.ModuleBackup)
	assert.Contains(t, resp.Modules, entitlement.ModuleNFe, "los demás módulos no se tocan")
}

func TestToggleModule_SinFilaDeLimitesCreaUnaSinTopes(t *testing.T) {
	plans := newMemPlanRepo(&entity.Plan{ID: "p1", Name: "Premium"})
	uc := newPlanUC(plans)

	resp, err := uc.ToggleModule(context.Background(), "p1", entitlement.ModuleLabels, operador())

	require.NoError(t, err)
	assert.Equal(t, entitlement.UnlimitedSentinel, resp.MaxUsers)
	assert.Equal(t, entitlement.UnlimitedSentinel, resp.MaxItems)
	assert.Equal(t, []string{entitlement.ModuleLabels}, resp.Modules)
}

func TestList_PlanSinLimitesEsValido(t *testing.T) {
	plans := newMemPlanRepo(&entity.Plan{ID: "p1", Name: "Essencial"})
	uc := newPlanUC(plans)

	out, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Limits, "ausencia de límites es estado válido, no error")
}
