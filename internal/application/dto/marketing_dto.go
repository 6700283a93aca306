package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBannerRequest alta de banner. ImageBase64 se sube al bucket y aquí
// solo persiste la URL pública resultante.
type CreateBannerRequest struct {
	Title       string     `json:"title"`
	LinkURL     string     `json:"link_url"`
	Position    string     `json:"position"`
	Active      bool       `json:"active"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	ImageBase64 string     `json:"image_base64,omitempty"`
	ContentType string     `json:"content_type,omitempty"`
}

// BannerResponse banner persistido.
type BannerResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	LinkURL   string     `json:"link_url"`
	Position  string     `json:"position"`
	Active    bool       `json:"active"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateCouponRequest alta de cupón. MaxRedemptions -1 = sin tope.
type CreateCouponRequest struct {
	Code           string          `json:"code"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	Active         bool            `json:"active"`
	ValidFrom      *time.Time      `json:"valid_from,omitempty"`
	ValidUntil     *time.Time      `json:"valid_until,omitempty"`
	MaxRedemptions int             `json:"max_redemptions"`
}

// CouponResponse cupón persistido.
type CouponResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	Active         bool            `json:"active"`
	ValidFrom      *time.Time      `json:"valid_from,omitempty"`
	ValidUntil     *time.Time      `json:"valid_until,omitempty"`
	MaxRedemptions int             `json:"max_redemptions"`
	CreatedAt      time.Time       `json:"created_at"`
}
