package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/statuswatch"
)

// StatusWatchHandler expone el snapshot de la empresa vigilada.
type StatusWatchHandler struct {
	watcher *statuswatch.Watcher
}

// NewStatusWatchHandler construye el handler.
func NewStatusWatchHandler(watcher *statuswatch.Watcher) *StatusWatchHandler {
	return &StatusWatchHandler{watcher: watcher}
}

// Current godoc
// @Summary      Último estado conocido de la empresa vigilada
// @Tags         statuswatch
// @Produce      json
// @Success      200  {object}  statuswatch.Snapshot
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/status-watch [get]
func (h *StatusWatchHandler) Current(c *fiber.Ctx) error {
	if !h.watcher.Enabled() {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DISABLED", Message: "no hay empresa vigilada configurada"})
	}
	return c.JSON(h.watcher.Current())
}
