package usecase

import (
	"context"

	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el chequeo de cuota y el insert
// del producto (o el descuento de stock y el alta de la venta) sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		notificationRepo repository.NotificationRepository,
	) error) error
}
