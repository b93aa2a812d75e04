package repository

import "github.com/jhoicas/FotoStock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (ventas concurrentes).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, quantity int) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Product, error)
	// CountByStore cuenta los productos de la tienda en el momento de la
	// decisión de cuota; nunca se usa un conteo cacheado.
	CountByStore(storeID string) (int, error)
	Delete(id string) error
}
