package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse métricas del dashboard de la tienda.
type DashboardResponse struct {
	TotalProducts int             `json:"total_products"`
	PlanLimit     int             `json:"plan_limit"` // -1 = ilimitado
	SalesToday    int             `json:"sales_today"`
	RevenueToday  decimal.Decimal `json:"revenue_today"`
	LowStockCount int             `json:"low_stock_count"`
}

// NotificationResponse aviso de la tienda.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminStoreResponse fila del panel admin (todas las tiendas).
type AdminStoreResponse struct {
	StoreID      string `json:"store_id"`
	StoreName    string `json:"store_name"`
	Slug         string `json:"store_slug"`
	Plan         string `json:"plan"`
	PlanLimit    int    `json:"plan_limit"`
	ProductCount int    `json:"product_count"`
	OwnerEmail   string `json:"owner_email"`
}
