package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateGoldPriceRequest upsert del precio por gramo de un quilataje.
type UpdateGoldPriceRequest struct {
	Karat string          `json:"karat"`
	Price decimal.Decimal `json:"price"`
}

// GoldPriceResponse precio vigente de un quilataje.
type GoldPriceResponse struct {
	Karat       string          `json:"karat"`
	Price       decimal.Decimal `json:"price"`
	LastUpdated time.Time       `json:"last_updated"`
}
