package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
)

// PlanHandler página de planes y asignación de plan a una tienda.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler de planes.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo de planes disponibles
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.PlanDetailsResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListPlans())
}

// Assign godoc
// @Summary      Asignar plan a la tienda (plan y límite en una sola escritura)
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeID  path  string  true  "ID de la tienda"
// @Param        body     body  dto.AssignPlanRequest  true  "tier del plan"
// @Success      200  {object}  dto.StoreResponse
// @Failure      400  {object}  dto.ErrorResponse  "tier desconocido"
// @Failure      403  {object}  dto.ErrorResponse  "requiere rol owner"
// @Router       /api/stores/{storeID}/plan [put]
func (h *PlanHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AssignPlan(c.Context(), GetProfile(c), c.Params("storeID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
