package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// Asegura que ProfileRepo implementa repository.ProfileRepository.
var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo perfiles sobre PostgreSQL. Permissions se guarda como JSONB.
type ProfileRepo struct {
	db querier
}

// NewProfileRepository construye el adaptador de perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: pool}
}

func marshalPermissions(p map[string]string) ([]byte, error) {
	if p == nil {
		p = map[string]string{}
	}
	return json.Marshal(p)
}

// Create persiste un perfil.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	perms, err := marshalPermissions(p.Permissions)
	if err != nil {
		return fmt.Errorf("marshal permissions: %w", err)
	}
	query := `
		INSERT INTO profiles (id, name, email, role, company_id, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Email, p.Role, p.CompanyID, perms, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) getBy(ctx context.Context, where string, arg any) (*entity.Profile, error) {
	query := `SELECT id, name, email, role, company_id, permissions, created_at, updated_at FROM profiles WHERE ` + where
	var p entity.Profile
	var perms []byte
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Email, &p.Role, &p.CompanyID, &perms, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if len(perms) > 0 {
		if err := json.Unmarshal(perms, &p.Permissions); err != nil {
			return nil, fmt.Errorf("unmarshal permissions: %w", err)
		}
	}
	return &p, nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail obtiene un perfil por email (resolución de empresa en webhooks).
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	if email == "" {
		return nil, nil
	}
	return r.getBy(ctx, "email = $1", email)
}

// Update actualiza nombre, rol y permisos.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	perms, err := marshalPermissions(p.Permissions)
	if err != nil {
		return fmt.Errorf("marshal permissions: %w", err)
	}
	query := `
		UPDATE profiles SET name = $2, role = $3, permissions = $4, updated_at = now()
		 WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Role, perms); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// ListTeam lista los perfiles internos del backoffice (sin empresa).
func (r *ProfileRepo) ListTeam(ctx context.Context) ([]*entity.Profile, error) {
	query := `
		SELECT id, name, email, role, company_id, permissions, created_at, updated_at
		  FROM profiles WHERE company_id IS NULL ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()

	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		var perms []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.CompanyID, &perms, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		if len(perms) > 0 {
			if err := json.Unmarshal(perms, &p.Permissions); err != nil {
				return nil, fmt.Errorf("unmarshal permissions: %w", err)
			}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
