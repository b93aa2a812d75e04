package repository

import "github.com/jhoicas/FotoStock-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	GetBySlug(slug string) (*entity.Store, error)
	// GetForUpdate bloquea la fila de la tienda (SELECT FOR UPDATE); solo tiene
	// sentido dentro de una transacción (ver TxRunner). Serializa el par
	// conteo-de-productos + insert del guard de cuota.
	GetForUpdate(id string) (*entity.Store, error)
	// UpdatePlan escribe plan y plan_limit en UNA sola sentencia: ningún lector
	// concurrente puede observar tier y límite inconsistentes.
	UpdatePlan(id, plan string, planLimit int) (*entity.Store, error)
	UpdateName(id, name string) error
	List(limit, offset int) ([]*entity.Store, error)
}
