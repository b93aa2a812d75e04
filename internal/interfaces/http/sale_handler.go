package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
)

// SaleHandler registro y consulta de ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar una venta (descuenta stock)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeID  path  string  true  "ID de la tienda"
// @Param        body     body  dto.RegisterSaleRequest  true  "venta"
// @Success      201  {object}  dto.SaleResponse
// @Failure      409  {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Router       /api/stores/{storeID}/sales [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), GetProfile(c), c.Params("storeID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas de la tienda
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        storeID  path   string  true   "ID de la tienda"
// @Param        limit    query  int     false  "máximo de filas"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/stores/{storeID}/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	out, err := h.uc.List(GetProfile(c), c.Params("storeID"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
