// Package authz implementa el guard de autorización por tenant: una función de
// decisión pura sobre (perfil, tienda objetivo, acción), sin acceso a datos.
// El perfil debe venir recién resuelto por auth.Resolve y viajar como argumento
// explícito; nunca se confía en estado ambiental del cliente.
package authz

import "github.com/jhoicas/FotoStock-api/internal/domain/entity"

// Action operación sobre una tienda que requiere autorización.
type Action string

const (
	ActionReadProducts   Action = "read_products"
	ActionWriteProducts  Action = "write_products"
	ActionRegisterSale   Action = "register_sale"
	ActionViewDashboard  Action = "view_dashboard"
	ActionManageTeam     Action = "manage_team"
	ActionManageSettings Action = "manage_settings"
	ActionManagePlan     Action = "manage_plan"
	ActionAdminPanel     Action = "admin_panel"
)

// minRole rol mínimo requerido por acción. Las acciones que no aparecen
// requieren employee (cualquier miembro de la tienda).
var minRole = map[Action]string{
	ActionManageTeam:     entity.RoleManager,
	ActionManageSettings: entity.RoleManager,
	ActionManagePlan:     entity.RoleOwner,
	ActionAdminPanel:     entity.RoleAdmin,
}

// rank orden de roles para el piso por acción. admin no se compara: tiene
// override global por la regla 1.
var rank = map[string]int{
	entity.RoleEmployee: 1,
	entity.RoleManager:  2,
	entity.RoleOwner:    3,
}

// Reason código de denegación para que el caller responda sin que el guard
// sepa nada de páginas ni redirects.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotAuthenticated Reason = "NotAuthenticated"
	ReasonWrongTenant      Reason = "WrongTenant"
	ReasonInsufficientRole Reason = "InsufficientRole"
)

// Decision resultado del guard.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow decisión positiva.
func Allow() Decision { return Decision{Allowed: true} }

// Deny decisión negativa con código de razón.
func Deny(r Reason) Decision { return Decision{Allowed: false, Reason: r} }

// Authorize decide si profile puede ejecutar action sobre la tienda targetStoreID.
// Reglas en orden, gana la primera que aplica:
//  1. admin: Allow para toda acción y toda tienda (override global).
//  2. tienda distinta a la propia: Deny(WrongTenant). Es el invariante central
//     del sistema: un principal no-admin jamás actúa sobre una tienda ajena.
//  3. rol por debajo del piso de la acción: Deny(InsufficientRole).
//  4. Allow.
func Authorize(profile *entity.Profile, targetStoreID string, action Action) Decision {
	if profile == nil {
		return Deny(ReasonNotAuthenticated)
	}
	if profile.Role == entity.RoleAdmin {
		return Allow()
	}
	if profile.StoreID == "" || profile.StoreID != targetStoreID {
		return Deny(ReasonWrongTenant)
	}
	if required, ok := minRole[action]; ok {
		if required == entity.RoleAdmin {
			// ya sabemos que el perfil no es admin
			return Deny(ReasonInsufficientRole)
		}
		if rank[profile.Role] < rank[required] {
			return Deny(ReasonInsufficientRole)
		}
	}
	return Allow()
}
