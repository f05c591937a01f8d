package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	Karat               string          `json:"karat"`
	Weight              decimal.Decimal `json:"weight"`
	Quantity            int             `json:"quantity"`
	MakingChargePerGram decimal.Decimal `json:"making_charge_per_gram"`
	CostPricePerGram    decimal.Decimal `json:"cost_price_per_gram"`
	Description         string          `json:"description"`
	ImageURL            string          `json:"image_url"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name                *string          `json:"name"`
	Category            *string          `json:"category"`
	Karat               *string          `json:"karat"`
	Weight              *decimal.Decimal `json:"weight"`
	Quantity            *int             `json:"quantity"`
	MakingChargePerGram *decimal.Decimal `json:"making_charge_per_gram"`
	CostPricePerGram    *decimal.Decimal `json:"cost_price_per_gram"`
	Description         *string          `json:"description"`
	ImageURL            *string          `json:"image_url"`
}

// ProductResponse producto más su precio de venta calculado con la tabla de
// precios vigente.
type ProductResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	Karat               string          `json:"karat"`
	Weight              decimal.Decimal `json:"weight"`
	Quantity            int             `json:"quantity"`
	MakingChargePerGram decimal.Decimal `json:"making_charge_per_gram"`
	CostPricePerGram    decimal.Decimal `json:"cost_price_per_gram"`
	Description         string          `json:"description,omitempty"`
	ImageURL            string          `json:"image_url,omitempty"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
}
