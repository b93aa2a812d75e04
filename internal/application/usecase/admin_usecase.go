package usecase

import (
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// AdminUseCase operaciones del super-usuario: vista global de tiendas y
// cambios de rol (el único camino para re-atar un perfil después de creado).
type AdminUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	profileRepo   repository.ProfileRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(analyticsRepo repository.AnalyticsRepository, profileRepo repository.ProfileRepository) *AdminUseCase {
	return &AdminUseCase{analyticsRepo: analyticsRepo, profileRepo: profileRepo}
}

// Overview lista todas las tiendas con su conteo de productos. Solo admin;
// la acción ActionAdminPanel deniega a cualquier otro rol, incluso sobre su
// propia tienda.
func (uc *AdminUseCase) Overview(profile *entity.Profile, limit, offset int) ([]dto.AdminStoreResponse, error) {
	if d := authz.Authorize(profile, "", authz.ActionAdminPanel); !d.Allowed {
		return nil, denialError(d)
	}
	rows, err := uc.analyticsRepo.ListStoresWithCounts(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminStoreResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminStoreResponse{
			StoreID:      r.StoreID,
			StoreName:    r.StoreName,
			Slug:         r.Slug,
			Plan:         r.Plan,
			PlanLimit:    r.PlanLimit,
			ProductCount: r.ProductCount,
			OwnerEmail:   r.OwnerEmail,
		})
	}
	return out, nil
}

// ChangeRole cambia el rol de un perfil (override de admin).
func (uc *AdminUseCase) ChangeRole(profile *entity.Profile, targetProfileID string, in dto.ChangeRoleRequest) (*dto.ProfileResponse, error) {
	if d := authz.Authorize(profile, "", authz.ActionAdminPanel); !d.Allowed {
		return nil, denialError(d)
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	target, err := uc.profileRepo.GetByID(targetProfileID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.profileRepo.UpdateRole(targetProfileID, in.Role); err != nil {
		return nil, err
	}
	target.Role = in.Role
	return toProfileResponse(target), nil
}
