package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/usecase"
)

// ActivityHandler visor de la bitácora de auditoría.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler inyectando el caso de uso.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar la bitácora con filtros
// @Tags         activity
// @Produce      json
// @Param        module    query  string  false  "Módulo"
// @Param        severity  query  string  false  "Severidad (info|success|warning|critical)"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.ActivityListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), c.Query("module"), c.Query("severity"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
