package usecase

import (
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// StoreUseCase lectura y ajustes de la tienda (el plan lo maneja PlanUseCase).
type StoreUseCase struct {
	storeRepo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo}
}

// Get obtiene la tienda del caller (o cualquiera, para admin).
func (uc *StoreUseCase) Get(profile *entity.Profile, storeID string) (*dto.StoreResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionViewDashboard); !d.Allowed {
		return nil, denialError(d)
	}
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(store), nil
}

// Rename cambia el nombre visible de la tienda. El slug no se toca: es la
// identidad pública del catálogo. Requiere ActionManageSettings.
func (uc *StoreUseCase) Rename(profile *entity.Profile, storeID string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionManageSettings); !d.Allowed {
		return nil, denialError(d)
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.storeRepo.UpdateName(storeID, in.Name); err != nil {
		return nil, err
	}
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(store), nil
}
