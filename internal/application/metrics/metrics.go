// Package metrics deriva los KPIs del dashboard a partir de filas crudas de
// empresas, facturas y gastos. Sin caché ni mantenimiento incremental: se
// recalcula todo en cada fetch.
package metrics

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain/entitlement"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// Service agrega los KPIs leyendo las tres fuentes en paralelo.
type Service struct {
	companies repository.CompanyRepository
	ledger    repository.LedgerRepository
	log       *logger.Logger
}

// NewService crea el servicio de métricas.
func NewService(companies repository.CompanyRepository, ledger repository.LedgerRepository, log *logger.Logger) *Service {
	return &Service{companies: companies, ledger: ledger, log: log}
}

// Summary dispara los tres fetches en paralelo y computa el resumen. Cada
// fetch que falla degrada a dataset vacío con un warning; un fallo aislado
// nunca bloquea a los hermanos ni tumba la vista.
func (s *Service) Summary(ctx context.Context) (*dto.MetricsSummary, error) {
	var (
		wg        sync.WaitGroup
		companies []*entity.Company
		invoices  []*entity.Invoice
		expenses  []*entity.Expense
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		rows, err := s.companies.ListAll(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("métricas: fetch de empresas falló; se usa dataset vacío")
			return
		}
		companies = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.ledger.ListInvoices(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("métricas: fetch de facturas falló; se usa dataset vacío")
			return
		}
		invoices = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.ledger.ListExpenses(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("métricas: fetch de gastos falló; se usa dataset vacío")
			return
		}
		expenses = rows
	}()
	wg.Wait()

	summary := Compute(companies, invoices, expenses)
	return &summary, nil
}

// Compute función pura que reproduce exactamente las fórmulas del producto.
// Toda división con denominador cero corta a 0; jamás NaN/Inf.
//
//	churn%  = suspensas / total * 100
//	MRR     = Σ facturas pagas
//	ticket  = MRR / activas
//	LTV     = churn > 0 ? ticket / (churn/100) : ticket * 12
//	CAC     = Σ gastos is_cac / activas
//	lucro   = MRR - Σ gastos
//	ratio   = CAC > 0 ? LTV / CAC : 0
//	payback = ARPU > 0 ? CAC / ARPU : 0   (ARPU = ticket)
func Compute(companies []*entity.Company, invoices []*entity.Invoice, expenses []*entity.Expense) dto.MetricsSummary {
	total := len(companies)
	active, suspended := 0, 0
	for _, c := range companies {
		switch entitlement.ParseStatus(c.Status) {
		case entitlement.StatusSuspended:
			suspended++
		case entitlement.StatusActive:
			active++
		}
	}

	zero := decimal.Zero
	mrr, pending := zero, zero
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoicePaid:
			mrr = mrr.Add(inv.Amount)
		case entity.InvoiceOpen:
			pending = pending.Add(inv.Amount)
		}
	}

	totalExpenses, cacSpend := zero, zero
	for _, exp := range expenses {
		totalExpenses = totalExpenses.Add(exp.Amount)
		if exp.IsCAC {
			cacSpend = cacSpend.Add(exp.Amount)
		}
	}

	churn := zero
	if total > 0 {
		churn = decimal.NewFromInt(int64(suspended)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(total)))
	}

	avgTicket := zero
	cac := zero
	if active > 0 {
		activeDec := decimal.NewFromInt(int64(active))
		avgTicket = mrr.Div(activeDec)
		cac = cacSpend.Div(activeDec)
	}

	ltv := avgTicket.Mul(decimal.NewFromInt(12))
	if churn.IsPositive() {
		ltv = avgTicket.Div(churn.Div(decimal.NewFromInt(100)))
	}

	ratio := zero
	if cac.IsPositive() {
		ratio = ltv.Div(cac)
	}

	payback := zero
	if avgTicket.IsPositive() {
		payback = cac.Div(avgTicket)
	}

	return dto.MetricsSummary{
		TotalCompanies:     total,
		ActiveCompanies:    active,
		SuspendedCompanies: suspended,
		ChurnRatePct:       churn,
		MRR:                mrr,
		PendingRevenue:     pending,
		AvgTicket:          avgTicket,
		LTV:                ltv,
		CAC:                cac,
		Profit:             mrr.Sub(totalExpenses),
		LTVCACRatio:        ratio,
		PaybackMonths:      payback,
	}
}
