package entity

import "time"

// Tipos de notificación (deben coincidir con el CHECK de la tabla notifications).
const (
	NotificationLowStock   = "low_stock"
	NotificationBestSeller = "best_seller"
	NotificationSlowMoving = "slow_moving"
)

// Umbral de stock bajo para generar NotificationLowStock tras una venta.
const LowStockThreshold = 5

// Notification aviso dirigido a una tienda (y opcionalmente a un usuario).
type Notification struct {
	ID        string
	StoreID   string
	UserID    string // vacío = toda la tienda
	Type      string // ver constantes Notification*
	Message   string
	Read      bool
	CreatedAt time.Time
}
