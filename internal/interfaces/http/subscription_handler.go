package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/usecase"
)

// SubscriptionHandler vista de suscripciones y acciones delegadas al proveedor.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler inyectando el caso de uso.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// List godoc
// @Summary      Listar el espejo local de suscripciones
// @Tags         subscriptions
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SubscriptionListResponse
// @Router       /api/subscriptions [get]
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ForceBilling godoc
// @Summary      Forzar un cobro inmediato en el proveedor
// @Tags         subscriptions
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ de la empresa"
// @Success      202
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{cnpj}/force-billing [post]
func (h *SubscriptionHandler) ForceBilling(c *fiber.Ctx) error {
	if err := h.uc.ForceBilling(c.Context(), c.Params("cnpj"), ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// Block godoc
// @Summary      Bloquear la suscripción en el proveedor
// @Tags         subscriptions
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ de la empresa"
// @Success      202
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{cnpj}/block [post]
func (h *SubscriptionHandler) Block(c *fiber.Ctx) error {
	if err := h.uc.Block(c.Context(), c.Params("cnpj"), ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// Reactivate godoc
// @Summary      Reactivar la suscripción en el proveedor
// @Tags         subscriptions
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ de la empresa"
// @Success      202
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{cnpj}/reactivate [post]
func (h *SubscriptionHandler) Reactivate(c *fiber.Ctx) error {
	if err := h.uc.Reactivate(c.Context(), c.Params("cnpj"), ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
