package entity

import "github.com/shopspring/decimal"

// Customer cliente del negocio. TotalPurchases es un acumulador que solo
// crece con las ventas asociadas al cliente.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
}
