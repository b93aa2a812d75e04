package usecase

import (
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// DashboardUseCase métricas agregadas de la tienda para el dashboard.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	storeRepo     repository.StoreRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, storeRepo repository.StoreRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, storeRepo: storeRepo}
}

// Get devuelve las métricas de la tienda del caller.
func (uc *DashboardUseCase) Get(profile *entity.Profile, storeID string) (*dto.DashboardResponse, error) {
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
	stats, err := uc.analyticsRepo.GetStoreStats(storeID, entity.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalProducts: stats.TotalProducts,
		PlanLimit:     store.PlanLimit,
		SalesToday:    stats.SalesToday,
		RevenueToday:  stats.RevenueToday,
		LowStockCount: stats.LowStockCount,
	}, nil
}
