package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
)

// StoreHandler lectura y ajustes de la tienda.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler de tiendas.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener la tienda
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        storeID  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeID} [get]
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetProfile(c), c.Params("storeID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Cambiar el nombre de la tienda (el slug no cambia)
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeID  path  string  true  "ID de la tienda"
// @Param        body     body  dto.UpdateStoreRequest  true  "nuevo nombre"
// @Success      200  {object}  dto.StoreResponse
// @Router       /api/stores/{storeID} [put]
func (h *StoreHandler) Rename(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Rename(GetProfile(c), c.Params("storeID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
