package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/plan"
)

func planUC(db *memDB) *usecase.PlanUseCase {
	return usecase.NewPlanUseCase(&fakeStoreRepo{db: db})
}

// Asignar un plan escribe tier y límite juntos: nunca un campo suelto.
func TestAssignPlan_TierYLimiteConsistentes(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	uc := planUC(db)
	owner := ownerOf(storeA)

	tests := []struct {
		tier      string
		wantLimit int
	}{
		{plan.TierSimple, 500},
		{plan.TierPro, entity.UnlimitedPlanLimit},
		{plan.TierAnnual, entity.UnlimitedPlanLimit},
		{plan.TierFree, 50}, // downgrade también reescribe el límite
	}
	for _, tt := range tests {
		out, err := uc.AssignPlan(context.Background(), owner, storeA, dto.AssignPlanRequest{Plan: tt.tier})
		require.NoError(t, err, tt.tier)
		assert.Equal(t, tt.tier, out.Plan)
		assert.Equal(t, tt.wantLimit, out.PlanLimit)

		// lo persistido coincide con lo devuelto
		stored := db.stores[storeA]
		assert.Equal(t, tt.tier, stored.Plan)
		assert.Equal(t, tt.wantLimit, stored.PlanLimit)
	}
}

func TestAssignPlan_TierDesconocido(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)

	_, err := planUC(db).AssignPlan(context.Background(), ownerOf(storeA), storeA, dto.AssignPlanRequest{Plan: "gold"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, plan.TierFree, db.stores[storeA].Plan, "un tier inválido no debe tocar la tienda")
}

// Cambiar el plan es cosa del owner: manager y employee quedan afuera.
func TestAssignPlan_RequiereOwner(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	uc := planUC(db)

	for _, role := range []string{entity.RoleManager, entity.RoleEmployee} {
		p := &entity.Profile{ID: "p-" + role, Role: role, StoreID: storeA}
		_, err := uc.AssignPlan(context.Background(), p, storeA, dto.AssignPlanRequest{Plan: plan.TierPro})
		assert.ErrorIs(t, err, domain.ErrForbidden, role)
	}
}

func TestAssignPlan_OwnerDeOtraTienda(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedStore(db, storeB, plan.TierFree)

	_, err := planUC(db).AssignPlan(context.Background(), ownerOf(storeB), storeA, dto.AssignPlanRequest{Plan: plan.TierPro})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, plan.TierFree, db.stores[storeA].Plan)
}

func TestAssignPlan_AdminSobreCualquierTienda(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	admin := &entity.Profile{ID: "admin-1", Role: entity.RoleAdmin}

	out, err := planUC(db).AssignPlan(context.Background(), admin, storeA, dto.AssignPlanRequest{Plan: plan.TierSimple})
	require.NoError(t, err)
	assert.Equal(t, plan.TierSimple, out.Plan)
	assert.Equal(t, 500, out.PlanLimit)
}

func TestAssignPlan_TiendaInexistente(t *testing.T) {
	db := newMemDB()
	admin := &entity.Profile{ID: "admin-1", Role: entity.RoleAdmin}

	_, err := planUC(db).AssignPlan(context.Background(), admin, "no-existe", dto.AssignPlanRequest{Plan: plan.TierPro})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestListPlans_CuatroTiersEnOrden(t *testing.T) {
	out := planUC(newMemDB()).ListPlans()
	require.Len(t, out, 4)
	assert.Equal(t, plan.TierFree, out[0].Tier)
	assert.Equal(t, plan.TierSimple, out[1].Tier)
	assert.Equal(t, plan.TierPro, out[2].Tier)
	assert.Equal(t, plan.TierAnnual, out[3].Tier)
	for _, p := range out {
		assert.Equal(t, plan.CeilingFor(p.Tier), p.Limit)
		assert.NotEmpty(t, p.Features)
	}
}
