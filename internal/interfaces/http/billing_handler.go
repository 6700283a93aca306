package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/usecase"
)

// BillingHandler exportación de comprobantes de factura.
type BillingHandler struct {
	uc *usecase.BillingUseCase
}

// NewBillingHandler construye el handler inyectando el caso de uso.
func NewBillingHandler(uc *usecase.BillingUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// InvoicePDF godoc
// @Summary      Descargar el comprobante PDF de una factura
// @Tags         billing
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *BillingHandler) InvoicePDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.InvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
