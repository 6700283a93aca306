package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/webhook"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// WebhookHandler endpoints públicos de las dos integraciones de pagos.
// Ambos responden 200 incluso ante "empresa no encontrada"; 4xx queda
// reservado para payloads malformados o no autenticados.
type WebhookHandler struct {
	processor    *webhook.Processor
	webhookToken string // header access-token esperado (integración principal)
	stripeSecret string // secreto de firma (integración Stripe)
	log          *logger.Logger
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(processor *webhook.Processor, webhookToken, stripeSecret string, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		processor:    processor,
		webhookToken: webhookToken,
		stripeSecret: stripeSecret,
		log:          log,
	}
}

// Payment godoc
// @Summary      Webhook del proveedor de pagos principal
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        access-token  header  string  true  "Token del webhook"
// @Param        body  body  dto.PaymentEvent  true  "Evento de pago"
// @Success      200   {object}  dto.WebhookResult
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /webhooks/payment [post]
func (h *WebhookHandler) Payment(c *fiber.Ctx) error {
	token := c.Get("access-token")
	if h.webhookToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookToken)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "access-token inválido"})
	}

	var ev dto.PaymentEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "payload inválido"})
	}

	out, err := h.processor.Process(c.Context(), ev)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stripe godoc
// @Summary      Webhook de Stripe (la verificación de firma es la autenticación)
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Firma del evento"
// @Success      200  {object}  dto.WebhookResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *fiber.Ctx) error {
	ev, ok, err := webhook.ParseStripeEvent(c.Body(), c.Get("Stripe-Signature"), h.stripeSecret)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: err.Error()})
	}
	if !ok {
		// tipo de evento que no nos interesa: se reconoce y listo
		return c.JSON(dto.WebhookResult{Result: "ignored"})
	}

	out, err := h.processor.Process(c.Context(), ev)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
