package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/application/usecase"
)

// TeamHandler alta y listado del equipo interno.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler inyectando el caso de uso.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// Provision godoc
// @Summary      Dar de alta un miembro del equipo (permisos inferidos de la descripción)
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProvisionTeamMemberRequest  true  "Miembro"
// @Success      201   {object}  dto.TeamMemberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/team [post]
func (h *TeamHandler) Provision(c *fiber.Ctx) error {
	var in dto.ProvisionTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Provision(c.Context(), in, ActorFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar el equipo interno
// @Tags         team
// @Produce      json
// @Success      200  {array}  dto.TeamMemberResponse
// @Router       /api/team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListTeam(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
