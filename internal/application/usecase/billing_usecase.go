package usecase

import (
	"context"
	"fmt"

	"github.com/invorya/backoffice-api/internal/domain"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
)

// InvoicePDFGenerator genera el comprobante PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}

// BillingUseCase exportación de comprobantes del libro de facturas.
type BillingUseCase struct {
	ledger    repository.LedgerRepository
	companies repository.CompanyRepository
	pdf       InvoicePDFGenerator
}

// NewBillingUseCase crea el caso de uso de facturación.
func NewBillingUseCase(
	ledger repository.LedgerRepository,
	companies repository.CompanyRepository,
	pdf InvoicePDFGenerator,
) *BillingUseCase {
	return &BillingUseCase{ledger: ledger, companies: companies, pdf: pdf}
}

// InvoicePDF genera el PDF de la factura y sugiere un nombre de archivo.
func (uc *BillingUseCase) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := uc.ledger.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}

	company, err := uc.companies.GetByID(ctx, invoice.CompanyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", fmt.Errorf("%w: empresa %s de la factura", domain.ErrNotFound, invoice.CompanyID)
	}

	data, err := uc.pdf.GenerateInvoicePDF(ctx, invoice, company)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("fatura-%s.pdf", invoice.ID), nil
}
