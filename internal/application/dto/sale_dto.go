package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest línea del carrito: producto y unidades.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest cierre de una venta. CustomerID vacío = venta de contado.
// Discount y Tax son montos absolutos; por defecto cero.
type CheckoutRequest struct {
	CustomerID    string                `json:"customer_id"`
	Items         []CheckoutItemRequest `json:"items"`
	Discount      decimal.Decimal       `json:"discount"`
	Tax           decimal.Decimal       `json:"tax"`
	PaymentMethod string                `json:"payment_method"`
}

// SaleItemResponse línea de venta con el snapshot de precios aplicado.
type SaleItemResponse struct {
	ProductID         string          `json:"product_id"`
	Name              string          `json:"name"`
	Karat             string          `json:"karat"`
	Weight            decimal.Decimal `json:"weight"`
	Quantity          int             `json:"quantity"`
	SalesPricePerGram decimal.Decimal `json:"sales_price_per_gram"`
	TotalPrice        decimal.Decimal `json:"total_price"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	Date          time.Time          `json:"date"`
	PaymentMethod string             `json:"payment_method"`
}
