package plan

import "github.com/jhoicas/FotoStock-api/internal/domain/entity"

// QuotaDecision resultado del guard de cuota.
type QuotaDecision int

const (
	// QuotaAllow el alta del producto puede continuar.
	QuotaAllow QuotaDecision = iota
	// QuotaExceeded la tienda ya está en el techo de su plan.
	QuotaExceeded
)

// CanAddProduct decide si la tienda puede dar de alta un producto más.
// currentCount es el conteo ANTES del insert, medido dentro de la misma
// transacción que el insert posterior (ver ProductUseCase.Create); la
// comparación es estricta porque PlanLimit es el máximo de productos que
// pueden existir simultáneamente.
func CanAddProduct(store *entity.Store, currentCount int) QuotaDecision {
	if store.PlanLimit == entity.UnlimitedPlanLimit {
		return QuotaAllow
	}
	if currentCount < store.PlanLimit {
		return QuotaAllow
	}
	return QuotaExceeded
}
