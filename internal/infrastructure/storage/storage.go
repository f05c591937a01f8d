// Package storage define el puerto clave-valor donde se persiste el estado
// del negocio: un valor JSON por clave con nombre, sin transaccionalidad
// entre claves. Cada colección se guarda bajo su propia clave y se persiste
// de forma independiente.
package storage

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/Thahab-api/pkg/logger"
)

// Claves del estado persistido. Una colección por clave.
const (
	KeyProducts           = "thahab_products"
	KeyCustomers          = "thahab_customers"
	KeySales              = "thahab_sales"
	KeySuppliers          = "thahab_suppliers"
	KeySupplyTransactions = "thahab_supply_transactions"
	KeyPrices             = "thahab_prices"
	KeyUser               = "thahab_user"
)

// AllKeys claves conocidas, en el orden en que se exportan en un respaldo.
var AllKeys = []string{
	KeyProducts,
	KeyCustomers,
	KeySales,
	KeySuppliers,
	KeySupplyTransactions,
	KeyPrices,
	KeyUser,
}

// KV almacén clave-valor síncrono. Get devuelve (nil, false, nil) si la
// clave no existe. Las implementaciones no interpretan el valor.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Load deserializa el valor guardado bajo key dentro de un T. Si la clave no
// existe, o el valor no se puede leer o decodificar, devuelve def y registra
// el problema; nunca propaga el error al llamador.
func Load[T any](ctx context.Context, kv KV, log *logger.Logger, key string, def T) T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("storage: error leyendo clave")
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Error().Err(err).Str("key", key).Msg("storage: valor corrupto, usando default")
		return def
	}
	return v
}

// Save serializa v y lo guarda bajo key. En caso de fallo registra y descarta
// la escritura; no tiene otro efecto observable.
func Save[T any](ctx context.Context, kv KV, log *logger.Logger, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("storage: error serializando valor")
		return
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		log.Error().Err(err).Str("key", key).Msg("storage: error guardando clave")
	}
}
