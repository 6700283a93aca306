package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/usecase"
)

// MarketingHandler banners y cupones.
type MarketingHandler struct {
	uc *usecase.MarketingUseCase
}

// NewMarketingHandler construye el handler inyectando el caso de uso.
func NewMarketingHandler(uc *usecase.MarketingUseCase) *MarketingHandler {
	return &MarketingHandler{uc: uc}
}

// CreateBanner godoc
// @Summary      Crear banner (sube la imagen al bucket)
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBannerRequest  true  "Banner"
// @Success      201   {object}  dto.BannerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/marketing/banners [post]
func (h *MarketingHandler) CreateBanner(c *fiber.Ctx) error {
	var in dto.CreateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBanner(c.Context(), in, ActorFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBanners godoc
// @Summary      Listar banners
// @Tags         marketing
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /api/marketing/banners [get]
func (h *MarketingHandler) ListBanners(c *fiber.Ctx) error {
	out, err := h.uc.ListBanners(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleBanner godoc
// @Summary      Activar o desactivar un banner
// @Tags         marketing
// @Produce      json
// @Param        id      path   string  true  "ID del banner"
// @Param        active  query  bool    true  "Estado destino"
// @Success      204
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/marketing/banners/{id}/toggle [post]
func (h *MarketingHandler) ToggleBanner(c *fiber.Ctx) error {
	active := c.QueryBool("active", true)
	if err := h.uc.ToggleBanner(c.Context(), c.Params("id"), active, ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteBanner godoc
// @Summary      Eliminar banner
// @Tags         marketing
// @Produce      json
// @Param        id  path  string  true  "ID del banner"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marketing/banners/{id} [delete]
func (h *MarketingHandler) DeleteBanner(c *fiber.Ctx) error {
	if err := h.uc.DeleteBanner(c.Context(), c.Params("id"), ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCoupon godoc
// @Summary      Crear cupón (código único)
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCouponRequest  true  "Cupón"
// @Success      201   {object}  dto.CouponResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/marketing/coupons [post]
func (h *MarketingHandler) CreateCoupon(c *fiber.Ctx) error {
	var in dto.CreateCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCoupon(c.Context(), in, ActorFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCoupons godoc
// @Summary      Listar cupones
// @Tags         marketing
// @Produce      json
// @Success      200  {array}  dto.CouponResponse
// @Router       /api/marketing/coupons [get]
func (h *MarketingHandler) ListCoupons(c *fiber.Ctx) error {
	out, err := h.uc.ListCoupons(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteCoupon godoc
// @Summary      Eliminar cupón
// @Tags         marketing
// @Produce      json
// @Param        id  path  string  true  "ID del cupón"
// @Success      204
// @Router       /api/marketing/coupons/{id} [delete]
func (h *MarketingHandler) DeleteCoupon(c *fiber.Ctx) error {
	if err := h.uc.DeleteCoupon(c.Context(), c.Params("id"), ActorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
