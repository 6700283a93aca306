package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/usecase"
)

// SupportHandler vista de backoffice de los tickets del producto.
type SupportHandler struct {
	uc *usecase.SupportUseCase
}

// NewSupportHandler construye el handler inyectando el caso de uso.
func NewSupportHandler(uc *usecase.SupportUseCase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

// List godoc
// @Summary      Listar tickets de soporte
// @Tags         support
// @Produce      json
// @Param        status  query  string  false  "Filtro por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.TicketResponse
// @Router       /api/support/tickets [get]
func (h *SupportHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un ticket
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.UpdateTicketStatusRequest  true  "Estado destino"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/support/tickets/{id}/status [put]
func (h *SupportHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status, ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
