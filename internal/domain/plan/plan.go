// Package plan define la tabla estática de planes (entitlements): techo de
// productos y features por tier, más el guard de cuota para altas de producto.
// Es configuración inmutable, no filas por tenant: todo chequeo de capacidad
// aguas abajo depende de leer esta tabla correctamente.
package plan

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
)

// Tiers válidos, en orden free < simple < {pro, annual}.
const (
	TierFree   = "free"
	TierSimple = "simple"
	TierPro    = "pro"
	TierAnnual = "annual"
)

// Tags de capacidades por plan.
const (
	FeaturePublicCatalog      = "public_catalog"
	FeatureBasicSales         = "basic_sales"
	FeatureFullSales          = "full_sales"
	FeatureStatistics         = "statistics"
	FeatureAdvancedStatistics = "advanced_statistics"
	FeatureNotifications      = "notifications"
)

// Details descripción de un plan para presentación y asignación.
type Details struct {
	Name     string
	Price    decimal.Decimal // por mes; el plan annual es por año
	Ceiling  int             // techo de productos; -1 = ilimitado
	Features []string
}

// table es la única fuente de verdad de los entitlements.
// Los ceilings son no decrecientes a lo largo del orden de tiers; el centinela
// -1 significa "sin techo" y jamás se compara numéricamente.
var table = map[string]Details{
	TierFree: {
		Name:     "Gratis",
		Price:    decimal.Zero,
		Ceiling:  50,
		Features: []string{FeaturePublicCatalog, FeatureBasicSales},
	},
	TierSimple: {
		Name:     "Simple",
		Price:    decimal.NewFromInt(29),
		Ceiling:  500,
		Features: []string{FeaturePublicCatalog, FeatureFullSales, FeatureStatistics},
	},
	TierPro: {
		Name:    "Pro",
		Price:   decimal.NewFromInt(59),
		Ceiling: entity.UnlimitedPlanLimit,
		Features: []string{
			FeaturePublicCatalog, FeatureFullSales,
			FeatureAdvancedStatistics, FeatureNotifications,
		},
	},
	TierAnnual: {
		Name:    "Anual",
		Price:   decimal.NewFromInt(590),
		Ceiling: entity.UnlimitedPlanLimit,
		Features: []string{
			FeaturePublicCatalog, FeatureFullSales,
			FeatureAdvancedStatistics, FeatureNotifications,
		},
	},
}

// Valid verifica que el tier exista en la tabla.
func Valid(tier string) bool {
	_, ok := table[tier]
	return ok
}

// CeilingFor devuelve el techo de productos del plan. Para tiers desconocidos
// devuelve el techo del plan free: nunca se regala capacidad por un typo.
func CeilingFor(tier string) int {
	if d, ok := table[tier]; ok {
		return d.Ceiling
	}
	return table[TierFree].Ceiling
}

// FeaturesFor devuelve los tags de capacidades del plan.
func FeaturesFor(tier string) []string {
	if d, ok := table[tier]; ok {
		return d.Features
	}
	return table[TierFree].Features
}

// HasFeature indica si el plan incluye la capacidad dada.
func HasFeature(tier, feature string) bool {
	for _, f := range FeaturesFor(tier) {
		if f == feature {
			return true
		}
	}
	return false
}

// DetailsFor devuelve la descripción completa del plan (para /plans y asignación).
func DetailsFor(tier string) (Details, bool) {
	d, ok := table[tier]
	return d, ok
}

// Tiers devuelve los tiers en su orden declarado.
func Tiers() []string {
	return []string{TierFree, TierSimple, TierPro, TierAnnual}
}
