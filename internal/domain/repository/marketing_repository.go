package repository

import (
	"context"

	"github.com/invorya/backoffice-api/internal/domain/entity"
)

// BannerRepository puerto de persistencia para banners.
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	List(ctx context.Context) ([]*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id string) error
}

// CouponRepository puerto de persistencia para cupones. Code es único:
// Create devuelve domain.ErrDuplicate ante colisión.
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByCode(ctx context.Context, code string) (*entity.Coupon, error)
	List(ctx context.Context) ([]*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id string) error
}
