package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Las URLs de imagen llegan ya
// procesadas por el servicio externo de remoción de fondo.
type CreateProductRequest struct {
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Price             decimal.Decimal  `json:"price"`
	PromotionalPrice  *decimal.Decimal `json:"promotional_price"`
	StockQuantity     int              `json:"stock_quantity"`
	ShelfLocation     string           `json:"shelf_location"`
	Barcode           string           `json:"barcode"`
	Category          string           `json:"category"`
	ImageURL          string           `json:"image_url"`
	ImageOriginalURL  string           `json:"image_original_url"`
	BackgroundRemoved bool             `json:"background_removed"`
	InvoiceURL        string           `json:"invoice_url"`
}

// UpdateProductRequest campos editables de un producto existente.
type UpdateProductRequest struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	StockQuantity    *int             `json:"stock_quantity"`
	ShelfLocation    string           `json:"shelf_location"`
	Barcode          string           `json:"barcode"`
	Category         string           `json:"category"`
	ImageURL         string           `json:"image_url"`
}

// ProductResponse producto expuesto por la API.
type ProductResponse struct {
	ID                string           `json:"id"`
	StoreID           string           `json:"store_id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	PromotionalPrice  *decimal.Decimal `json:"promotional_price,omitempty"`
	StockQuantity     int              `json:"stock_quantity"`
	ShelfLocation     string           `json:"shelf_location,omitempty"`
	Barcode           string           `json:"barcode,omitempty"`
	Category          string           `json:"category,omitempty"`
	ImageURL          string           `json:"image_url,omitempty"`
	BackgroundRemoved bool             `json:"background_removed"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
