package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCompute_DatasetVacioTodoEnCero(t *testing.T) {
	sum := Compute(nil, nil, nil)

	assert.Equal(t, 0, sum.TotalCompanies)
	assert.True(t, sum.ChurnRatePct.IsZero())
	assert.True(t, sum.MRR.IsZero())
	assert.True(t, sum.AvgTicket.IsZero())
	assert.True(t, sum.LTV.IsZero())
	assert.True(t, sum.CAC.IsZero())
	assert.True(t, sum.LTVCACRatio.IsZero())
	assert.True(t, sum.PaybackMonths.IsZero())
}

func TestCompute_EscenarioFacturasYUnaEmpresaActiva(t *testing.T) {
	companies := []*entity.Company{
		{ID: "c1", Status: "Ativo"},
	}
	invoices := []*entity.Invoice{
		{Amount: amount("1000"), Status: entity.InvoicePaid},
		{Amount: amount("500"), Status: entity.InvoiceOpen},
	}

	sum := Compute(companies, invoices, nil)

	assert.True(t, sum.MRR.Equal(amount("1000")), "MRR = %s", sum.MRR)
	assert.True(t, sum.AvgTicket.Equal(amount("1000")))
	assert.True(t, sum.PendingRevenue.Equal(amount("500")))
}

func TestCompute_ChurnYLTV(t *testing.T) {
	companies := []*entity.Company{
		{Status: "Ativo"},
		{Status: "Ativo"},
		{Status: "Ativo"},
		{Status: "Suspenso"},
	}
	invoices := []*entity.Invoice{
		{Amount: amount("300"), Status: entity.InvoicePaid},
	}

	sum := Compute(companies, invoices, nil)

	// churn = 1/4*100 = 25; ticket = 300/3 = 100; LTV = 100/(25/100) = 400
	assert.True(t, sum.ChurnRatePct.Equal(amount("25")), "churn = %s", sum.ChurnRatePct)
	assert.True(t, sum.AvgTicket.Equal(amount("100")))
	assert.True(t, sum.LTV.Equal(amount("400")), "LTV = %s", sum.LTV)
}

func TestCompute_SinChurnLTVProyectaDoceMeses(t *testing.T) {
	companies := []*entity.Company{{Status: "Ativo"}}
	invoices := []*entity.Invoice{
		{Amount: amount("100"), Status: entity.InvoicePaid},
	}

	sum := Compute(companies, invoices, nil)

	assert.True(t, sum.LTV.Equal(amount("1200")), "LTV = %s", sum.LTV)
}

func TestCompute_CACLucroRatioYPayback(t *testing.T) {
	companies := []*entity.Company{
		{Status: "Ativo"},
		{Status: "Ativo"},
	}
	invoices := []*entity.Invoice{
		{Amount: amount("400"), Status: entity.InvoicePaid},
	}
	expenses := []*entity.Expense{
		{Amount: amount("100"), IsCAC: true},
		{Amount: amount("50"), IsCAC: false},
	}

	sum := Compute(companies, invoices, expenses)

	// ticket = 200; CAC = 100/2 = 50; lucro = 400-150 = 250
	// LTV = 2400; ratio = 2400/50 = 48; payback = 50/200 = 0.25
	assert.True(t, sum.CAC.Equal(amount("50")), "CAC = %s", sum.CAC)
	assert.True(t, sum.Profit.Equal(amount("250")))
	assert.True(t, sum.LTVCACRatio.Equal(amount("48")), "ratio = %s", sum.LTVCACRatio)
	assert.True(t, sum.PaybackMonths.Equal(amount("0.25")), "payback = %s", sum.PaybackMonths)
}

func TestCompute_EstadoNuloYLegadoCuentanComoActivas(t *testing.T) {
	companies := []*entity.Company{
		{Status: ""},
		{Status: "active"},
		{Status: "Suspenso"},
	}

	sum := Compute(companies, nil, nil)

	assert.Equal(t, 2, sum.ActiveCompanies)
	assert.Equal(t, 1, sum.SuspendedCompanies)
}

// fakes para el fan-out concurrente

type fakeCompanyRepo struct {
	repository.CompanyRepository
	rows []*entity.Company
	err  error
}

func (f *fakeCompanyRepo) ListAll(ctx context.Context) ([]*entity.Company, error) {
	return f.rows, f.err
}

type fakeLedgerRepo struct {
	repository.LedgerRepository
	invoices    []*entity.Invoice
	expenses    []*entity.Expense
	invoicesErr error
}

func (f *fakeLedgerRepo) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	return f.invoices, f.invoicesErr
}

func (f *fakeLedgerRepo) ListExpenses(ctx context.Context) ([]*entity.Expense, error) {
	return f.expenses, nil
}

func TestSummary_FalloParcialDegradaAVacioSinBloquear(t *testing.T) {
	companies := &fakeCompanyRepo{rows: []*entity.Company{{Status: "Ativo"}}}
	ledger := &fakeLedgerRepo{
		invoicesErr: errors.New("timeout"),
		expenses:    []*entity.Expense{{Amount: amount("50"), IsCAC: true}},
	}
	svc := NewService(companies, ledger, logger.New(logger.Config{Env: "production", Level: "error"}))

	sum, err := svc.Summary(context.Background())

	require.NoError(t, err, "un fetch fallido no debe tumbar el resumen")
	assert.True(t, sum.MRR.IsZero(), "facturas degradan a vacío")
	assert.Equal(t, 1, sum.ActiveCompanies, "las demás fuentes siguen contando")
	assert.True(t, sum.CAC.Equal(amount("50")))
}
