package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

// ImageUploader sube una imagen y devuelve su URL pública.
type ImageUploader interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
}

// MarketingUseCase gestión de banners y cupones.
type MarketingUseCase struct {
	banners  repository.BannerRepository
	coupons  repository.CouponRepository
	uploader ImageUploader
	audit    *auditor
	log      *logger.Logger
}

// NewMarketingUseCase crea el caso de uso de marketing.
func NewMarketingUseCase(
	banners repository.BannerRepository,
	coupons repository.CouponRepository,
	uploader ImageUploader,
	logs repository.ActivityLogRepository,
	profiles repository.ProfileRepository,
	log *logger.Logger,
) *MarketingUseCase {
	return &MarketingUseCase{
		banners:  banners,
		coupons:  coupons,
		uploader: uploader,
		audit:    newAuditor(logs, profiles, log),
		log:      log,
	}
}

// CreateBanner da de alta un banner. Si viene imagen en base64, primero se
// sube al bucket y se persiste solo la URL pública resultante.
func (uc *MarketingUseCase) CreateBanner(ctx context.Context, req dto.CreateBannerRequest, actor Actor) (*dto.BannerResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: el banner requiere título", domain.ErrInvalidInput)
	}

	id := uuid.New().String()
	imageURL := ""
	if req.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: imagen base64 inválida", domain.ErrInvalidInput)
		}
		contentType := req.ContentType
		if contentType == "" {
			contentType = "image/png"
		}
		imageURL, err = uc.uploader.Upload(ctx, "banners/"+id, data, contentType)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	banner := &entity.Banner{
		ID:        id,
		Title:     req.Title,
		ImageURL:  imageURL,
		LinkURL:   req.LinkURL,
		Position:  req.Position,
		Active:    req.Active,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.banners.Create(ctx, banner); err != nil {
		return nil, err
	}

	uc.audit.record(ctx, actor, "Banner criado",
		fmt.Sprintf("Banner %q criado na posição %s", banner.Title, banner.Position),
		"marketing", entity.SeveritySuccess)

	return toBannerResponse(banner), nil
}

// ListBanners lista todos los banners.
func (uc *MarketingUseCase) ListBanners(ctx context.Context) ([]dto.BannerResponse, error) {
	banners, err := uc.banners.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, *toBannerResponse(b))
	}
	return out, nil
}

// ToggleBanner activa/desactiva un banner.
func (uc *MarketingUseCase) ToggleBanner(ctx context.Context, id string, active bool, actor Actor) error {
	banner, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if banner == nil {
		return domain.ErrNotFound
	}
	banner.Active = active
	banner.UpdatedAt = time.Now().UTC()
	if err := uc.banners.Update(ctx, banner); err != nil {
		return err
	}

	state := "ativado"
	if !active {
		state = "desativado"
	}
	uc.audit.record(ctx, actor, "Banner alternado",
		fmt.Sprintf("Banner %q %s", banner.Title, state),
		"marketing", entity.SeverityInfo)
	return nil
}

// DeleteBanner elimina un banner.
func (uc *MarketingUseCase) DeleteBanner(ctx context.Context, id string, actor Actor) error {
	banner, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if banner == nil {
		return domain.ErrNotFound
	}
	if err := uc.banners.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.record(ctx, actor, "Banner removido",
		fmt.Sprintf("Banner %q removido", banner.Title),
		"marketing", entity.SeverityWarning)
	return nil
}

// CreateCoupon da de alta un cupón. El código es único.
func (uc *MarketingUseCase) CreateCoupon(ctx context.Context, req dto.CreateCouponRequest, actor Actor) (*dto.CouponResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, fmt.Errorf("%w: el cupón requiere código", domain.ErrInvalidInput)
	}
	if req.DiscountPct.IsNegative() || req.DiscountPct.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: el descuento debe estar entre 0 y 100", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	coupon := &entity.Coupon{
		ID:             uuid.New().String(),
		Code:           code,
		DiscountPct:    req.DiscountPct,
		Active:         req.Active,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		MaxRedemptions: req.MaxRedemptions,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.coupons.Create(ctx, coupon); err != nil {
		return nil, err
	}

	uc.audit.record(ctx, actor, "Cupom criado",
		fmt.Sprintf("Cupom %s criado com %s%% de desconto", coupon.Code, coupon.DiscountPct.String()),
		"marketing", entity.SeveritySuccess)

	return toCouponResponse(coupon), nil
}

// ListCoupons lista todos los cupones.
func (uc *MarketingUseCase) ListCoupons(ctx context.Context) ([]dto.CouponResponse, error) {
	coupons, err := uc.coupons.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, *toCouponResponse(c))
	}
	return out, nil
}

// DeleteCoupon elimina un cupón.
func (uc *MarketingUseCase) DeleteCoupon(ctx context.Context, id string, actor Actor) error {
	if err := uc.coupons.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.record(ctx, actor, "Cupom removido",
		fmt.Sprintf("Cupom %s removido", id),
		"marketing", entity.SeverityWarning)
	return nil
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Position:  b.Position,
		Active:    b.Active,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		CreatedAt: b.CreatedAt,
	}
}

func toCouponResponse(c *entity.Coupon) *dto.CouponResponse {
	return &dto.CouponResponse{
		ID:             c.ID,
		Code:           c.Code,
		DiscountPct:    c.DiscountPct,
		Active:         c.Active,
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		MaxRedemptions: c.MaxRedemptions,
		CreatedAt:      c.CreatedAt,
	}
}
