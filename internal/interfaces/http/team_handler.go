package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
)

// TeamHandler gestión del equipo de la tienda.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler de equipo.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// Invite godoc
// @Summary      Invitar un miembro (manager o employee)
// @Tags         team
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeID  path  string  true  "ID de la tienda"
// @Param        body     body  dto.InviteMemberRequest  true  "miembro"
// @Success      201  {object}  dto.ProfileResponse
// @Failure      403  {object}  dto.ErrorResponse  "requiere rol manager"
// @Failure      409  {object}  dto.ErrorResponse  "EMAIL_EXISTS"
// @Router       /api/stores/{storeID}/team [post]
func (h *TeamHandler) Invite(c *fiber.Ctx) error {
	var in dto.InviteMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Invite(c.Context(), GetProfile(c), c.Params("storeID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar miembros de la tienda
// @Tags         team
// @Security     Bearer
// @Produce      json
// @Param        storeID  path   string  true   "ID de la tienda"
// @Param        limit    query  int     false  "máximo de filas"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {object}  dto.TeamListResponse
// @Router       /api/stores/{storeID}/team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	out, err := h.uc.List(GetProfile(c), c.Params("storeID"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
