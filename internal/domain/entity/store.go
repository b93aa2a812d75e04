package entity

import "time"

// Store representa una tienda: la frontera de tenant del sistema.
// Invariante: PlanLimit SIEMPRE es igual al ceiling de la tabla de planes para
// Plan; los dos campos se actualizan juntos en una sola sentencia (ver
// PlanUseCase.AssignPlan). PlanLimit = -1 significa ilimitado.
type Store struct {
	ID        string
	OwnerID   string // Profile.ID del owner
	Name      string
	Slug      string // URL-safe, único entre todas las tiendas
	Plan      string // free, simple, pro, annual
	PlanLimit int    // -1 = ilimitado
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Unlimited indica si la tienda no tiene techo de productos.
func (s *Store) Unlimited() bool {
	return s.PlanLimit == UnlimitedPlanLimit
}

// UnlimitedPlanLimit valor centinela para "sin techo de productos".
// Nunca se compara numéricamente contra un conteo.
const UnlimitedPlanLimit = -1
