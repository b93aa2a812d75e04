package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
)

// DashboardHandler métricas y notificaciones de la tienda.
type DashboardHandler struct {
	dashboardUC    *usecase.DashboardUseCase
	notificationUC *usecase.NotificationUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, notificationUC *usecase.NotificationUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, notificationUC: notificationUC}
}

// Get godoc
// @Summary      Métricas del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        storeID  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/stores/{storeID}/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Get(GetProfile(c), c.Params("storeID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListNotifications godoc
// @Summary      Listar notificaciones de la tienda
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        storeID  path   string  true   "ID de la tienda"
// @Param        limit    query  int     false  "máximo de filas"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/stores/{storeID}/notifications [get]
func (h *DashboardHandler) ListNotifications(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	out, err := h.notificationUC.List(GetProfile(c), c.Params("storeID"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkNotificationRead godoc
// @Summary      Marcar una notificación como leída
// @Tags         dashboard
// @Security     Bearer
// @Param        storeID  path  string  true  "ID de la tienda"
// @Param        id       path  string  true  "ID de la notificación"
// @Success      204  "sin contenido"
// @Router       /api/stores/{storeID}/notifications/{id}/read [put]
func (h *DashboardHandler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.notificationUC.MarkRead(GetProfile(c), c.Params("storeID"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
