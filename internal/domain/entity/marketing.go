package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Banner pieza de marketing mostrada en el producto. La imagen se sube al
// bucket del proveedor hosteado y aquí solo se guarda la URL pública.
type Banner struct {
	ID        string
	Title     string
	ImageURL  string
	LinkURL   string
	Position  string // home, dashboard, checkout
	Active    bool
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coupon cupón de descuento. Code es único.
type Coupon struct {
	ID             string
	Code           string
	DiscountPct    decimal.Decimal
	Active         bool
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	MaxRedemptions int // -1 = sin tope
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
