package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplyTransaction registro inmutable de mercancía recibida de un proveedor.
// Log append-only; el más reciente va primero en la lista en memoria.
type SupplyTransaction struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	Date         time.Time       `json:"date"`
}
