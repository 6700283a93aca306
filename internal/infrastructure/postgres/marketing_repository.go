package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// Asegura la implementación de ambos puertos de marketing.
var (
	_ repository.BannerRepository = (*BannerRepo)(nil)
	_ repository.CouponRepository = (*CouponRepo)(nil)
)

// BannerRepo banners sobre PostgreSQL.
type BannerRepo struct {
	db querier
}

// NewBannerRepository construye el adaptador de banners.
func NewBannerRepository(pool *pgxpool.Pool) *BannerRepo {
	return &BannerRepo{db: pool}
}

const bannerColumns = `id, title, image_url, link_url, position, active, starts_at, ends_at, created_at, updated_at`

// Create persiste un banner.
func (r *BannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	query := `
		INSERT INTO banners (` + bannerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.ImageURL, b.LinkURL, b.Position, b.Active,
		b.StartsAt, b.EndsAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID obtiene un banner por ID.
func (r *BannerRepo) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1`
	var b entity.Banner
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Active,
		&b.StartsAt, &b.EndsAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

// List devuelve todos los banners, más recientes primero.
func (r *BannerRepo) List(ctx context.Context) ([]*entity.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var list []*entity.Banner
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(
			&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Active,
			&b.StartsAt, &b.EndsAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza un banner.
func (r *BannerRepo) Update(ctx context.Context, b *entity.Banner) error {
	query := `
		UPDATE banners
		   SET title = $2, image_url = $3, link_url = $4, position = $5,
		       active = $6, starts_at = $7, ends_at = $8, updated_at = now()
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.ImageURL, b.LinkURL, b.Position, b.Active, b.StartsAt, b.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

// Delete elimina un banner.
func (r *BannerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}

// CouponRepo cupones sobre PostgreSQL.
type CouponRepo struct {
	db querier
}

// NewCouponRepository construye el adaptador de cupones.
func NewCouponRepository(pool *pgxpool.Pool) *CouponRepo {
	return &CouponRepo{db: pool}
}

const couponColumns = `id, code, discount_pct, active, valid_from, valid_until, max_redemptions, created_at, updated_at`

// Create persiste un cupón. Code es único.
func (r *CouponRepo) Create(ctx context.Context, c *entity.Coupon) error {
	query := `
		INSERT INTO coupons (` + couponColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Code, c.DiscountPct, c.Active, c.ValidFrom, c.ValidUntil,
		c.MaxRedemptions, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

// GetByCode obtiene un cupón por código.
func (r *CouponRepo) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`
	var c entity.Coupon
	err := r.db.QueryRow(ctx, query, code).Scan(
		&c.ID, &c.Code, &c.DiscountPct, &c.Active, &c.ValidFrom, &c.ValidUntil,
		&c.MaxRedemptions, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	return &c, nil
}

// List devuelve todos los cupones.
func (r *CouponRepo) List(ctx context.Context) ([]*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	var list []*entity.Coupon
	for rows.Next() {
		var c entity.Coupon
		if err := rows.Scan(
			&c.ID, &c.Code, &c.DiscountPct, &c.Active, &c.ValidFrom, &c.ValidUntil,
			&c.MaxRedemptions, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cupón.
func (r *CouponRepo) Update(ctx context.Context, c *entity.Coupon) error {
	query := `
		UPDATE coupons
		   SET code = $2, discount_pct = $3, active = $4, valid_from = $5,
		       valid_until = $6, max_redemptions = $7, updated_at = now()
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Code, c.DiscountPct, c.Active, c.ValidFrom, c.ValidUntil, c.MaxRedemptions,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update coupon: %w", err)
	}
	return nil
}

// Delete elimina un cupón.
func (r *CouponRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}
