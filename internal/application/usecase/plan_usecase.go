package usecase

import (
	"context"

	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/plan"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// PlanUseCase asigna planes a tiendas manteniendo el invariante
// plan/plan_limit: los dos campos se escriben en una sola sentencia y nunca
// pueden observarse inconsistentes.
type PlanUseCase struct {
	storeRepo repository.StoreRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(storeRepo repository.StoreRepository) *PlanUseCase {
	return &PlanUseCase{storeRepo: storeRepo}
}

// AssignPlan aplica un cambio de plan a la tienda. Precondición: el guard debe
// permitir ActionManagePlan (solo el owner de la tienda o un admin).
// Errores: domain.ErrForbidden si el guard deniega, domain.ErrStoreNotFound si
// la tienda no existe; los fallos del storage se propagan sin tocar (el caller
// reintenta la asignación completa, nunca un campo suelto).
func (uc *PlanUseCase) AssignPlan(ctx context.Context, profile *entity.Profile, storeID string, in dto.AssignPlanRequest) (*dto.StoreResponse, error) {
	_ = ctx
	if !plan.Valid(in.Plan) {
		return nil, domain.ErrInvalidInput
	}
	if d := authz.Authorize(profile, storeID, authz.ActionManagePlan); !d.Allowed {
		return nil, domain.ErrForbidden
	}

	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	// UNA sentencia escribe tier + límite: ningún lector concurrente puede ver
	// plan=pro con limit=50.
	updated, err := uc.storeRepo.UpdatePlan(storeID, in.Plan, plan.CeilingFor(in.Plan))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(updated), nil
}

// ListPlans devuelve la tabla de planes para la página de selección.
func (uc *PlanUseCase) ListPlans() []dto.PlanDetailsResponse {
	tiers := plan.Tiers()
	out := make([]dto.PlanDetailsResponse, 0, len(tiers))
	for _, tier := range tiers {
		d, _ := plan.DetailsFor(tier)
		out = append(out, dto.PlanDetailsResponse{
			Tier:     tier,
			Name:     d.Name,
			Price:    d.Price,
			Limit:    d.Ceiling,
			Features: d.Features,
		})
	}
	return out
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Slug:      s.Slug,
		Plan:      s.Plan,
		PlanLimit: s.PlanLimit,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
