package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
)

// AdminHandler panel de administración global. Todas las rutas pasan por
// RequireRole(admin) en el router, y el caso de uso vuelve a verificar.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler del panel admin.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Overview godoc
// @Summary      Todas las tiendas con su plan y conteo de productos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.AdminStoreResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/stores [get]
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	out, err := h.uc.Overview(GetProfile(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeRole godoc
// @Summary      Cambiar el rol de un perfil
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del perfil"
// @Param        body  body  dto.ChangeRoleRequest  true  "nuevo rol"
// @Success      200  {object}  dto.ProfileResponse
// @Router       /api/admin/profiles/{id}/role [put]
func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeRole(GetProfile(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
