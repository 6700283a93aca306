package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// Actor identidad del operador que ejecuta una acción administrativa,
// tal como la extrajo el middleware del token.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// actorFallbackName nombre genérico cuando ninguna fuente resuelve al actor.
const actorFallbackName = "Backoffice User"

// auditor escribe la bitácora de auditoría en modo best-effort: un fallo al
// registrar nunca bloquea ni revierte la mutación primaria que lo originó.
type auditor struct {
	logs     repository.ActivityLogRepository
	profiles repository.ProfileRepository
	log      *logger.Logger
}

func newAuditor(logs repository.ActivityLogRepository, profiles repository.ProfileRepository, log *logger.Logger) *auditor {
	return &auditor{logs: logs, profiles: profiles, log: log}
}

// resolveName cadena de fallback: nombre del token → perfil por email →
// genérico. Nunca falla.
func (a *auditor) resolveName(ctx context.Context, actor Actor) string {
	if actor.Name != "" {
		return actor.Name
	}
	if actor.Email != "" && a.profiles != nil {
		if p, err := a.profiles.GetByEmail(ctx, actor.Email); err == nil && p != nil && p.Name != "" {
			return p.Name
		}
	}
	return actorFallbackName
}

// record agrega una entrada. Best-effort: el error se degrada a warning.
func (a *auditor) record(ctx context.Context, actor Actor, action, details, module, severity string) {
	entry := &entity.ActivityLog{
		ID:        uuid.New().String(),
		ActorName: a.resolveName(ctx, actor),
		ActorRole: actor.Role,
		Action:    action,
		Details:   details,
		Module:    module,
		Severity:  severity,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.logs.Append(ctx, entry); err != nil {
		a.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar la entrada de auditoría")
	}
}
