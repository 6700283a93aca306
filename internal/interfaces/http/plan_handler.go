package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/catalog"
	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/usecase"
)

// PlanHandler planes, límites y sincronización de catálogo.
type PlanHandler struct {
	uc   *usecase.PlanUseCase
	sync *catalog.SyncUseCase
}

// NewPlanHandler construye el handler inyectando los casos de uso.
func NewPlanHandler(uc *usecase.PlanUseCase, sync *catalog.SyncUseCase) *PlanHandler {
	return &PlanHandler{uc: uc, sync: sync}
}

// List godoc
// @Summary      Listar planes con sus límites
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpsertLimits godoc
// @Summary      Crear o actualizar los límites de un plan (-1 = ilimitado)
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plan"
// @Param        body  body  dto.UpsertPlanLimitsRequest  true  "Límites"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/limits [put]
func (h *PlanHandler) UpsertLimits(c *fiber.Ctx) error {
	var in dto.UpsertPlanLimitsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpsertLimits(c.Context(), c.Params("id"), in, ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleModule godoc
// @Summary      Alternar un módulo premium del plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plan"
// @Param        body  body  dto.ToggleModuleRequest  true  "Módulo"
// @Success      200   {object}  dto.PlanLimitsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/modules/toggle [post]
func (h *PlanHandler) ToggleModule(c *fiber.Ctx) error {
	var in dto.ToggleModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ToggleModule(c.Context(), c.Params("id"), in.ModuleID, ActorFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SyncCatalog godoc
// @Summary      Sincronizar el catálogo de planes desde el proveedor de pagos
// @Tags         plans
// @Produce      json
// @Success      200  {object}  dto.CatalogSyncResult
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/plans/sync [post]
func (h *PlanHandler) SyncCatalog(c *fiber.Ctx) error {
	out, err := h.sync.Sync(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PROVIDER_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}
