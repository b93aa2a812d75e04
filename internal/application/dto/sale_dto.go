package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest registra una venta desde el dashboard.
// SalePrice es opcional: si no viene, se usa el precio efectivo del producto.
type RegisterSaleRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	SalePrice *decimal.Decimal `json:"sale_price"`
}

// SaleResponse venta expuesta por la API.
type SaleResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	ProductID string          `json:"product_id"`
	SoldBy    string          `json:"sold_by,omitempty"`
	Quantity  int             `json:"quantity"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Total     decimal.Decimal `json:"total"`
	SaleDate  time.Time       `json:"sale_date"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
