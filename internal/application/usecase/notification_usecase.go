package usecase

import (
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// NotificationUseCase lectura de avisos de la tienda.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// List lista los avisos de la tienda del caller.
func (uc *NotificationUseCase) List(profile *entity.Profile, storeID string, limit, offset int) ([]dto.NotificationResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionViewDashboard); !d.Allowed {
		return nil, denialError(d)
	}
	notifications, err := uc.notificationRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca un aviso como leído. El repo exige que el aviso pertenezca a
// storeID: un ID de otra tienda devuelve ErrNotFound, nunca muta.
func (uc *NotificationUseCase) MarkRead(profile *entity.Profile, storeID, notificationID string) error {
	if d := authz.Authorize(profile, storeID, authz.ActionViewDashboard); !d.Allowed {
		return denialError(d)
	}
	return uc.notificationRepo.MarkRead(notificationID, storeID)
}
