package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una tienda.
// La imagen ya procesada (fondo removido por el servicio externo) llega como URL;
// esta capa solo la persiste.
type Product struct {
	ID                string
	StoreID           string
	Name              string
	Description       string
	Price             decimal.Decimal
	PromotionalPrice  *decimal.Decimal // nil = sin promoción
	StockQuantity     int
	ShelfLocation     string // prateleira: "A1", "B3"
	Barcode           string
	Category          string
	ImageURL          string
	ImageOriginalURL  string
	BackgroundRemoved bool
	InvoiceURL        string // nota fiscal adjunta (opcional)
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EffectivePrice devuelve el precio promocional si existe, si no el precio normal.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PromotionalPrice != nil {
		return *p.PromotionalPrice
	}
	return p.Price
}
