package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin    = "admin"    // super-usuario global, sin tienda
	RoleOwner    = "owner"    // dueño de la tienda
	RoleManager  = "manager"  // encargado (equipo y ajustes)
	RoleEmployee = "employee" // empleado (operación diaria)
)

// Profile representa la identidad resuelta de un usuario autenticado.
// Para roles owner/manager/employee StoreID referencia exactamente una tienda,
// asignada en la creación e inmutable salvo intervención de un admin.
// Para admin StoreID es irrelevante: el admin no está limitado por tenant.
type Profile struct {
	ID           string
	Email        string
	FullName     string
	Role         string // admin, owner, manager, employee
	StoreID      string // vacío para admin
	PasswordHash string // bcrypt, nunca plano después de persistir
	CreatedBy    string // perfil que lo creó (invitaciones de equipo)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el perfil tiene el override global.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// ValidRole verifica que el rol sea uno de los cuatro conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOwner, RoleManager, RoleEmployee:
		return true
	}
	return false
}
