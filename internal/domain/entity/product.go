package entity

import "github.com/shopspring/decimal"

// Product representa una pieza de joyería del inventario.
// Weight está en gramos; MakingChargePerGram es la "masna'iya" (mano de obra
// por gramo) que se suma al valor del oro al calcular el precio de venta.
// Los tags JSON son camelCase para mantener compatible el layout persistido.
type Product struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	Karat               Karat           `json:"karat"`
	Weight              decimal.Decimal `json:"weight"`
	Quantity            int             `json:"quantity"`
	MakingChargePerGram decimal.Decimal `json:"makingChargePerGram"`
	CostPricePerGram    decimal.Decimal `json:"costPricePerGram,omitempty"`
	Description         string          `json:"description,omitempty"`
	ImageURL            string          `json:"imageUrl,omitempty"`
}
