package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
)

func TestInferPermissions_ModulosPorPalabraClave(t *testing.T) {
	perms := InferPermissions("Responsável por visualizar empresas e assinaturas")

	assert.Equal(t, entity.PermissionView, perms["empresas"])
	assert.Equal(t, entity.PermissionView, perms["assinaturas"])
	assert.Equal(t, entity.PermissionNone, perms["marketing"])
	assert.Equal(t, entity.PermissionNone, perms["equipe"])
}

func TestInferPermissions_PalabraFullElevaElNivel(t *testing.T) {
	perms := InferPermissions("Vai gerenciar empresas e planos")

	assert.Equal(t, entity.PermissionFull, perms["empresas"])
	assert.Equal(t, entity.PermissionFull, perms["planos"])
}

func TestInferPermissions_FullGlobalPisaElViewPorModulo(t *testing.T) {
	// Comportamiento heredado: una palabra "full" en CUALQUIER parte del
	// texto eleva TODOS los módulos matcheados, aunque el texto pida
	// "somente leitura" para alguno.
	perms := InferPermissions("Administrador de planos; empresas somente leitura")

	assert.Equal(t, entity.PermissionFull, perms["planos"])
	assert.Equal(t, entity.PermissionFull, perms["empresas"],
		"el tie-break global favorece full, no está acotado por módulo")
}

func TestInferPermissions_SinPalabrasConocidasTodoEnNone(t *testing.T) {
	perms := InferPermissions("colaborador novo, sem atribuições definidas")

	for module, level := range perms {
		assert.Equal(t, entity.PermissionNone, level, "módulo %s", module)
	}
}

func TestInferPermissions_AccesoTotalSinModulosConcretos(t *testing.T) {
	perms := InferPermissions("Acesso total ao sistema")

	for _, module := range BackofficeModules {
		assert.Equal(t, entity.PermissionFull, perms[module], "módulo %s", module)
	}
}

func TestInferPermissions_Determinista(t *testing.T) {
	desc := "Gerenciar marketing e visualizar faturas"
	assert.Equal(t, InferPermissions(desc), InferPermissions(desc))
}

func newTeamUC(profiles *memProfileRepo) *TeamUseCase {
	return NewTeamUseCase(profiles, &memActivityRepo{}, quietLogger())
}

func TestProvision_AplicaOverridesDespuesDeInferir(t *testing.T) {
	profiles := &memProfileRepo{}
	uc := newTeamUC(profiles)

	resp, err := uc.Provision(context.Background(), dto.ProvisionTeamMemberRequest{
		Name:        "Carla Dias",
		Email:       "carla@invorya.com",
		Role:        entity.RoleOperator,
		Description: "Gerenciar empresas",
		Overrides:   map[string]string{"empresas": entity.PermissionView},
	}, operador())

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionView, resp.Permissions["empresas"],
		"el override explícito gana sobre la inferencia")
}

func TestProvision_EmailDuplicado(t *testing.T) {
	profiles := &memProfileRepo{byEmail: map[string]*entity.Profile{
		"carla@invorya.com": {ID: "p1", Email: "carla@invorya.com"},
	}}
	uc := newTeamUC(profiles)

	_, err := uc.Provision(context.Background(), dto.ProvisionTeamMemberRequest{
		Name:  "Carla Dias",
		Email: "Carla@Invorya.com", // se normaliza a minúsculas
	}, operador())

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestProvision_OverrideConNivelDesconocido(t *testing.T) {
	uc := newTeamUC(&memProfileRepo{})

	_, err := uc.Provision(context.Background(), dto.ProvisionTeamMemberRequest{
		Name:      "Carla Dias",
		Email:     "carla@invorya.com",
		Overrides: map[string]string{"empresas": "superuser"},
	}, operador())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
