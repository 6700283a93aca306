package dto

import "github.com/shopspring/decimal"

// MetricsSummary KPIs del dashboard. Se recalculan en cada fetch; toda
// división con denominador posiblemente cero corta a 0 (nunca NaN/Inf).
type MetricsSummary struct {
	TotalCompanies     int             `json:"total_companies"`
	ActiveCompanies    int             `json:"active_companies"`
	SuspendedCompanies int             `json:"suspended_companies"`
	ChurnRatePct       decimal.Decimal `json:"churn_rate_pct"`
	MRR                decimal.Decimal `json:"mrr"`
	PendingRevenue     decimal.Decimal `json:"pending_revenue"`
	AvgTicket          decimal.Decimal `json:"avg_ticket"`
	LTV                decimal.Decimal `json:"ltv"`
	CAC                decimal.Decimal `json:"cac"`
	Profit             decimal.Decimal `json:"profit"`
	LTVCACRatio        decimal.Decimal `json:"ltv_cac_ratio"`
	PaybackMonths      decimal.Decimal `json:"payback_months"`
}
