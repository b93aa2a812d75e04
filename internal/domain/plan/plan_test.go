package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/plan"
)

func TestCeilingFor_TiersConocidos(t *testing.T) {
	assert.Equal(t, 50, plan.CeilingFor(plan.TierFree))
	assert.Equal(t, 500, plan.CeilingFor(plan.TierSimple))
	assert.Equal(t, entity.UnlimitedPlanLimit, plan.CeilingFor(plan.TierPro))
	assert.Equal(t, entity.UnlimitedPlanLimit, plan.CeilingFor(plan.TierAnnual))
}

// Un tier desconocido NO regala capacidad: cae al techo del plan free.
func TestCeilingFor_TierDesconocidoCaeAFree(t *testing.T) {
	assert.Equal(t, plan.CeilingFor(plan.TierFree), plan.CeilingFor("enterprise"))
	assert.Equal(t, plan.CeilingFor(plan.TierFree), plan.CeilingFor(""))
}

func TestValid(t *testing.T) {
	for _, tier := range plan.Tiers() {
		assert.True(t, plan.Valid(tier), tier)
	}
	assert.False(t, plan.Valid("gold"))
	assert.False(t, plan.Valid(""))
	assert.False(t, plan.Valid("FREE"), "los tiers son case-sensitive")
}

// Los techos son no decrecientes en el orden free < simple < pro/annual
// (tratando -1 como infinito).
func TestCeilings_NoDecrecientes(t *testing.T) {
	tiers := plan.Tiers()
	prev := 0
	for _, tier := range tiers {
		c := plan.CeilingFor(tier)
		if c == entity.UnlimitedPlanLimit {
			// ilimitado domina cualquier techo finito
			prev = int(^uint(0) >> 1)
			continue
		}
		assert.GreaterOrEqual(t, c, prev, "el techo de %s no puede ser menor que el del tier anterior", tier)
		prev = c
	}
}

func TestHasFeature(t *testing.T) {
	assert.True(t, plan.HasFeature(plan.TierFree, plan.FeaturePublicCatalog))
	assert.False(t, plan.HasFeature(plan.TierFree, plan.FeatureNotifications))
	assert.True(t, plan.HasFeature(plan.TierPro, plan.FeatureNotifications))
}

func TestDetailsFor(t *testing.T) {
	d, ok := plan.DetailsFor(plan.TierSimple)
	require.True(t, ok)
	assert.Equal(t, "Simple", d.Name)
	assert.Equal(t, 500, d.Ceiling)

	_, ok = plan.DetailsFor("gold")
	assert.False(t, ok)
}
