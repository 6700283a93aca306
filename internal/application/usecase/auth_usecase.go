package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/config"
	"github.com/invorya/backoffice-api/pkg/jwt"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// AuthUseCase registro y login del personal del backoffice.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase crea el caso de uso de autenticación.
func NewAuthUseCase(users repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, log: log}
}

// Register da de alta una cuenta del personal con la contraseña hasheada.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: email obligatorio y contraseña de al menos 8 caracteres", domain.ErrInvalidInput)
	}

	role := req.Role
	switch role {
	case "":
		role = entity.RoleViewer
	case entity.RoleAdmin, entity.RoleOperator, entity.RoleViewer:
	default:
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, role)
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("cuenta de personal registrada")
	return toUserResponse(user), nil
}

// Login valida las credenciales y emite un JWT con nombre y rol.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
