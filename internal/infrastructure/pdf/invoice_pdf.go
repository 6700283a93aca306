// Package pdf genera el comprobante PDF de una factura del libro de ingresos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Backoffice + N° Fatura │ Fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Nombre + CNPJ + contacto + plan                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Vencimiento | Estado | Valor          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invorya/backoffice-api/internal/application/usecase"
	"github.com/invorya/backoffice-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// statusLabels etiquetas humanas de los estados de factura.
var statusLabels = map[string]string{
	entity.InvoicePaid:    "Paga",
	entity.InvoiceOpen:    "Em aberto",
	entity.InvoiceOverdue: "Vencida",
	entity.InvoiceVoid:    "Cancelada",
}

// MarotoInvoicePDF implementa usecase.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoicePDF struct{}

var _ usecase.InvoicePDFGenerator = (*MarotoInvoicePDF)(nil)

// NewMarotoInvoicePDF construye el generador.
func NewMarotoInvoicePDF() *MarotoInvoicePDF { return &MarotoInvoicePDF{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoInvoicePDF) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fatura "+invoice.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(invoiceRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y número + fecha de emisión (der).
func headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Backoffice — Comprovante de Fatura", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FATURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+invoice.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// companyRow: datos de la empresa facturada.
func companyRow(company *entity.Company) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPRESA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CNPJ: %s   |   Email: %s   |   Plano: %s",
				company.CNPJ,
				nonEmpty(company.Email, "—"),
				nonEmpty(company.Plan, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descrição", 5, align.Left),
		h("Vencimento", 3, align.Center),
		h("Status", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

func invoiceRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	status := statusLabels[invoice.Status]
	if status == "" {
		status = invoice.Status
	}
	return row.New(7).Add(
		col.New(5).Add(text.New(
			"Assinatura mensal — "+company.Plan,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			invoice.DueDate.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			status,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"R$ "+invoice.Amount.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New("R$ "+invoice.Amount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
