package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/domain/pricing"
)

func testPrices() []entity.GoldPrice {
	now := time.Now()
	return []entity.GoldPrice{
		{Karat: entity.Karat24, Price: decimal.NewFromInt(4150), LastUpdated: now},
		{Karat: entity.Karat22, Price: decimal.NewFromInt(3800), LastUpdated: now},
		{Karat: entity.Karat21, Price: decimal.NewFromInt(3630), LastUpdated: now},
		{Karat: entity.Karat18, Price: decimal.NewFromInt(3110), LastUpdated: now},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UnitPrice
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de caja: pieza de 5 g a 3630/g con 100/g de mano de obra.
// ceil(3630*5 + 100*5) = 18650.
func TestUnitPrice_Pieza21Quilates(t *testing.T) {
	p := entity.Product{
		Karat:               entity.Karat21,
		Weight:              decimal.NewFromInt(5),
		MakingChargePerGram: decimal.NewFromInt(100),
	}
	got := pricing.UnitPrice(p, testPrices())
	assert.True(t, got.Equal(decimal.NewFromInt(18650)),
		"precio unitario esperado 18650, obtenido %s", got)
}

// El precio unitario siempre se redondea hacia arriba al entero.
func TestUnitPrice_RedondeaHaciaArriba(t *testing.T) {
	p := entity.Product{
		Karat:               entity.Karat21,
		Weight:              decimal.RequireFromString("1.3"),
		MakingChargePerGram: decimal.RequireFromString("0.5"),
	}
	// 3630*1.3 + 0.5*1.3 = 4719.65 → 4720
	got := pricing.UnitPrice(p, testPrices())
	assert.True(t, got.Equal(decimal.NewFromInt(4720)),
		"esperado 4720, obtenido %s", got)
}

// Quilataje sin precio en la tabla: la valoración usa la tarifa de respaldo 0
// en ventas, así que el precio queda solo en mano de obra.
func TestUnitPrice_QuilatajeSinPrecio(t *testing.T) {
	p := entity.Product{
		Karat:               entity.Karat14,
		Weight:              decimal.NewFromInt(10),
		MakingChargePerGram: decimal.NewFromInt(50),
	}
	got := pricing.UnitPrice(p, testPrices())
	assert.True(t, got.Equal(decimal.NewFromInt(500)),
		"sin tarifa para el quilataje solo cuenta la mano de obra, obtenido %s", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// RateFor
// ──────────────────────────────────────────────────────────────────────────────

func TestRateFor_PrimeraCoincidencia(t *testing.T) {
	prices := testPrices()
	// Entrada duplicada: debe ganar la primera.
	prices = append(prices, entity.GoldPrice{Karat: entity.Karat21, Price: decimal.NewFromInt(9999)})

	got := pricing.RateFor(entity.Karat21, prices, pricing.FallbackSaleRate)
	assert.True(t, got.Equal(decimal.NewFromInt(3630)))
}

func TestRateFor_FallbackVenta(t *testing.T) {
	got := pricing.RateFor(entity.Karat14, testPrices(), pricing.FallbackSaleRate)
	assert.True(t, got.IsZero(), "la tarifa de respaldo de venta es cero")
}

func TestRateFor_FallbackValoracion(t *testing.T) {
	got := pricing.RateFor(entity.Karat14, testPrices(), pricing.FallbackValuationRate)
	assert.True(t, got.Equal(decimal.NewFromInt(3000)),
		"la tarifa de respaldo de valoración es 3000")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultGoldPrices_Semilla(t *testing.T) {
	prices := entity.DefaultGoldPrices(time.Now())
	want := map[entity.Karat]int64{
		entity.Karat24: 4150,
		entity.Karat22: 3800,
		entity.Karat21: 3630,
		entity.Karat18: 3110,
	}
	assert.Len(t, prices, len(want))
	for _, p := range prices {
		assert.True(t, p.Price.Equal(decimal.NewFromInt(want[p.Karat])),
			"precio por defecto para %s", p.Karat)
	}
}
