package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/metrics"
)

// MetricsHandler KPIs del dashboard.
type MetricsHandler struct {
	svc *metrics.Service
}

// NewMetricsHandler construye el handler inyectando el servicio.
func NewMetricsHandler(svc *metrics.Service) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

// Summary godoc
// @Summary      Resumen de KPIs (MRR, churn, CAC, LTV, payback)
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  dto.MetricsSummary
// @Router       /api/metrics/summary [get]
func (h *MetricsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.svc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
