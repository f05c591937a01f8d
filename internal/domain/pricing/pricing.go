// Package pricing contiene el cálculo puro del precio de venta de una pieza.
//
// Fórmula: precio = techo(tarifa_oro(quilate) * peso + mano_de_obra * peso).
// El redondeo es SIEMPRE hacia arriba a la unidad monetaria entera (favorece
// al vendedor); no es redondeo al más cercano ni truncamiento.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

// FallbackSaleRate tarifa por gramo usada al vender cuando no hay precio
// registrado para el quilataje: cero, el precio colapsa a la mano de obra.
var FallbackSaleRate = decimal.Zero

// FallbackValuationRate tarifa por gramo usada al estimar el valor del
// inventario cuando no hay precio registrado para el quilataje.
var FallbackValuationRate = decimal.NewFromInt(3000)

// RateFor devuelve la tarifa por gramo vigente para el quilataje, o fallback
// si no existe registro. Primera coincidencia gana.
func RateFor(karat entity.Karat, prices []entity.GoldPrice, fallback decimal.Decimal) decimal.Decimal {
	for _, p := range prices {
		if p.Karat == karat {
			return p.Price
		}
	}
	return fallback
}

// UnitPrice calcula el precio de venta unitario de un producto con la tabla
// de precios vigente.
func UnitPrice(p entity.Product, prices []entity.GoldPrice) decimal.Decimal {
	rate := RateFor(p.Karat, prices, FallbackSaleRate)
	goldValue := rate.Mul(p.Weight)
	makingCharges := p.MakingChargePerGram.Mul(p.Weight)
	return goldValue.Add(makingCharges).Ceil()
}
