package repository

import (
	"time"

	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Sale, error)
	ListByStoreAndDate(storeID string, from, to time.Time) ([]*entity.Sale, error)
}
