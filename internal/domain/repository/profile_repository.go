package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// ProfileRepository puerto de persistencia para perfiles (equipo interno y
// usuarios del producto vinculados a una empresa).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error

	// ListTeam lista solo perfiles internos (company_id IS NULL).
	ListTeam(ctx context.Context) ([]*entity.Profile, error)
}
