package repository

import "github.com/jhoicas/FotoStock-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Notification, error)
	// MarkRead marca el aviso como leído solo si pertenece a la tienda dada;
	// domain.ErrNotFound si no existe o es de otra tienda.
	MarkRead(id, storeID string) error
}
