package repository

import "github.com/jhoicas/FotoStock-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para Profile (DIP).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
	// UpdateRole cambia solo el rol (override de admin; ver AdminUseCase).
	UpdateRole(id, role string) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Profile, error)
}
