package dto

import "github.com/shopspring/decimal"

// AssignPlanRequest selección de plan para una tienda. Solo registra la
// intención y actualiza los entitlements; el cobro queda fuera del sistema.
type AssignPlanRequest struct {
	Plan string `json:"plan"` // free, simple, pro, annual
}

// PlanDetailsResponse descripción de un plan para la página de selección.
type PlanDetailsResponse struct {
	Tier     string          `json:"tier"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Limit    int             `json:"limit"` // -1 = ilimitado
	Features []string        `json:"features"`
}
