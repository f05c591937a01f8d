package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// CashCustomerName nombre mostrado cuando la venta es anónima (sin cliente).
const CashCustomerName = "عميل نقدي"

// CartItem línea de venta: snapshot del producto más la tarifa de oro por
// gramo vigente al momento de añadirlo al carrito. Una vez cerrada la venta
// queda desacoplado del producto origen: cambios posteriores de precio o
// stock no alteran ventas históricas.
type CartItem struct {
	Product
	SalesPricePerGram decimal.Decimal `json:"salesPricePerGram"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
}

// Sale registro inmutable de una venta. Log append-only, el más reciente
// primero. CustomerID vacío significa venta anónima (cliente de contado).
type Sale struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName"`
	Items         []CartItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
}
