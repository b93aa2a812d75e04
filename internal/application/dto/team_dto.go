package dto

// InviteMemberRequest alta de un miembro del equipo en la tienda del caller.
type InviteMemberRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"` // manager | employee
}

// ChangeRoleRequest cambio de rol por override de admin.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// TeamListResponse miembros de la tienda.
type TeamListResponse struct {
	Items []ProfileResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
