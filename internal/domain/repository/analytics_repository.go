package repository

import "github.com/shopspring/decimal"

// StoreStats métricas agregadas de una tienda para el dashboard.
type StoreStats struct {
	TotalProducts int
	SalesToday    int
	RevenueToday  decimal.Decimal
	LowStockCount int
}

// AdminStoreRow fila del panel admin: tienda + conteo de productos.
type AdminStoreRow struct {
	StoreID      string
	StoreName    string
	Slug         string
	Plan         string
	PlanLimit    int
	ProductCount int
	OwnerEmail   string
}

// AnalyticsRepository consultas agregadas de solo lectura (dashboard y admin).
type AnalyticsRepository interface {
	GetStoreStats(storeID string, lowStockThreshold int) (*StoreStats, error)
	ListStoresWithCounts(limit, offset int) ([]*AdminStoreRow, error)
}
