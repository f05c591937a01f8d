package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldPrice precio por gramo vigente para un quilataje.
// Invariante: a lo sumo un registro por quilataje (upsert por karat).
type GoldPrice struct {
	Karat       Karat           `json:"karat"`
	Price       decimal.Decimal `json:"price"` // por gramo
	LastUpdated time.Time       `json:"lastUpdated"`
}

// DefaultGoldPrices tabla inicial cuando el almacén aún no tiene precios.
func DefaultGoldPrices(now time.Time) []GoldPrice {
	return []GoldPrice{
		{Karat: Karat24, Price: decimal.NewFromInt(4150), LastUpdated: now},
		{Karat: Karat22, Price: decimal.NewFromInt(3800), LastUpdated: now},
		{Karat: Karat21, Price: decimal.NewFromInt(3630), LastUpdated: now},
		{Karat: Karat18, Price: decimal.NewFromInt(3110), LastUpdated: now},
	}
}
