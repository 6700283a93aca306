package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// BackofficeModules módulos del backoffice sobre los que se asignan permisos.
var BackofficeModules = []string{
	"dashboard",
	"empresas",
	"planos",
	"assinaturas",
	"financeiro",
	"marketing",
	"suporte",
	"auditoria",
	"equipe",
}

// Tabla de reglas: palabra clave (substring, minúsculas) → módulo.
var moduleKeywords = map[string][]string{
	"dashboard":   {"dashboard", "painel", "métricas", "metricas"},
	"empresas":    {"empresa", "cliente", "tenant"},
	"planos":      {"plano", "limite", "módulo", "modulo"},
	"assinaturas": {"assinatura", "cobrança", "cobranca", "pagamento"},
	"financeiro":  {"financeiro", "fatura", "despesa", "receita"},
	"marketing":   {"marketing", "banner", "cupom"},
	"suporte":     {"suporte", "ticket", "atendimento"},
	"auditoria":   {"auditoria", "bitácora", "log"},
	"equipe":      {"equipe", "time interno", "permissões", "permissoes"},
}

// Palabras que elevan el nivel. Las "full" se buscan en TODO el texto, no por
// módulo: si aparece una en cualquier parte, todos los módulos inferidos
// quedan en full aunque el texto también diga "somente leitura" para alguno.
// Comportamiento heredado del producto, preservado a propósito.
var fullKeywords = []string{
	"acesso total",
	"administrador",
	"gerenciar",
	"editar",
	"completo",
}

var viewKeywords = []string{
	"visualizar",
	"somente leitura",
	"apenas ver",
	"consultar",
}

// InferPermissions deriva la matriz módulo → nivel a partir de la descripción
// libre del miembro. Determinista: misma entrada, misma matriz.
func InferPermissions(description string) map[string]string {
	text := strings.ToLower(description)

	hasFull := containsAny(text, fullKeywords)
	hasView := containsAny(text, viewKeywords)

	level := entity.PermissionView
	if hasFull {
		level = entity.PermissionFull
	} else if hasView {
		level = entity.PermissionView
	}

	perms := make(map[string]string, len(BackofficeModules))
	for _, m := range BackofficeModules {
		perms[m] = entity.PermissionNone
	}

	matched := false
	for module, keywords := range moduleKeywords {
		if containsAny(text, keywords) {
			perms[module] = level
			matched = true
		}
	}

	// "acesso total" sin módulos concretos = todo en full.
	if !matched && hasFull {
		for _, m := range BackofficeModules {
			perms[m] = entity.PermissionFull
		}
	}

	return perms
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func validPermissionLevel(level string) bool {
	switch level {
	case entity.PermissionFull, entity.PermissionView, entity.PermissionNone:
		return true
	}
	return false
}

// TeamUseCase alta y listado de perfiles del equipo interno.
type TeamUseCase struct {
	profiles repository.ProfileRepository
	audit    *auditor
	log      *logger.Logger
}

// NewTeamUseCase crea el caso de uso de equipo.
func NewTeamUseCase(
	profiles repository.ProfileRepository,
	logs repository.ActivityLogRepository,
	log *logger.Logger,
) *TeamUseCase {
	return &TeamUseCase{
		profiles: profiles,
		audit:    newAuditor(logs, profiles, log),
		log:      log,
	}
}

// Provision da de alta un miembro del equipo: infiere la matriz de permisos
// de la descripción y después aplica los overrides explícitos por módulo.
func (uc *TeamUseCase) Provision(ctx context.Context, req dto.ProvisionTeamMemberRequest, actor Actor) (*dto.TeamMemberResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: nombre y email son obligatorios", domain.ErrInvalidInput)
	}

	existing, err := uc.profiles.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	perms := InferPermissions(req.Description)
	for module, level := range req.Overrides {
		if !validPermissionLevel(level) {
			return nil, fmt.Errorf("%w: nivel de permiso desconocido %q para %s", domain.ErrInvalidInput, level, module)
		}
		perms[module] = level
	}

	now := time.Now().UTC()
	profile := &entity.Profile{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	uc.audit.record(ctx, actor, "Membro da equipe criado",
		fmt.Sprintf("Perfil %s (%s) criado com papel %s", profile.Name, profile.Email, profile.Role),
		"equipe", entity.SeveritySuccess)

	return toTeamMemberResponse(profile), nil
}

// ListTeam lista los perfiles internos (sin empresa vinculada).
func (uc *TeamUseCase) ListTeam(ctx context.Context) ([]dto.TeamMemberResponse, error) {
	profiles, err := uc.profiles.ListTeam(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, *toTeamMemberResponse(p))
	}
	return out, nil
}

func toTeamMemberResponse(p *entity.Profile) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Role:        p.Role,
		Permissions: p.Permissions,
		CreatedAt:   p.CreatedAt,
	}
}
