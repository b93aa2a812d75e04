package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada desde el dashboard.
// El descuento de stock y la inserción de la venta ocurren en la misma
// transacción (ver SaleUseCase).
type Sale struct {
	ID        string
	StoreID   string
	ProductID string
	SoldBy    string // Profile.ID del vendedor
	Quantity  int
	SalePrice decimal.Decimal // precio unitario al momento de la venta
	SaleDate  time.Time
	CreatedAt time.Time
}

// Total importe total de la venta.
func (s *Sale) Total() decimal.Decimal {
	return s.SalePrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
