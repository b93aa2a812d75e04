package dto

import "time"

// StoreResponse tienda expuesta por la API.
type StoreResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"store_name"`
	Slug      string    `json:"store_slug"`
	Plan      string    `json:"plan"`
	PlanLimit int       `json:"plan_limit"` // -1 = ilimitado
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStoreRequest ajustes de la tienda (solo el nombre; el slug es fijo).
type UpdateStoreRequest struct {
	Name string `json:"store_name"`
}

// StoreListResponse listado para el panel admin.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
