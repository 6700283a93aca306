package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanResponse plan con sus límites (Limits nil = sin límites configurados).
type PlanResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Price           decimal.Decimal     `json:"price"`
	ProviderOfferID string              `json:"provider_offer_id,omitempty"`
	Limits          *PlanLimitsResponse `json:"limits,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// PlanLimitsResponse límites de un plan. -1 = ilimitado.
type PlanLimitsResponse struct {
	MaxUsers int      `json:"max_users"`
	MaxItems int      `json:"max_items"`
	Modules  []string `json:"modules"`
}

// UpsertPlanLimitsRequest edición de límites. -1 = ilimitado, se preserva.
type UpsertPlanLimitsRequest struct {
	MaxUsers int      `json:"max_users"`
	MaxItems int      `json:"max_items"`
	Modules  []string `json:"modules"`
}

// ToggleModuleRequest alterna un módulo premium en el plan.
type ToggleModuleRequest struct {
	ModuleID string `json:"module_id"`
}

// CatalogSyncResult resumen de la sincronización de catálogo.
type CatalogSyncResult struct {
	Fetched  int      `json:"fetched"`
	Inserted int      `json:"inserted"`
	Dropped  []string `json:"dropped,omitempty"` // nombres de ofertas descartadas por el dedup
}
