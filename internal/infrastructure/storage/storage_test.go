package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

// Guardar y recargar una colección reconstruye un estado equivalente.
func TestLoadSave_RoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	log := logger.Nop()

	in := []entity.Product{{
		ID:                  "p1",
		Name:                "خاتم ذهب",
		Karat:               entity.Karat21,
		Weight:              decimal.RequireFromString("5.25"),
		Quantity:            3,
		MakingChargePerGram: decimal.NewFromInt(100),
	}}
	storage.Save(ctx, kv, log, storage.KeyProducts, in)

	out := storage.Load(ctx, kv, log, storage.KeyProducts, []entity.Product{})
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, entity.Karat21, out[0].Karat)
	assert.True(t, out[0].Weight.Equal(decimal.RequireFromString("5.25")),
		"el peso decimal sobrevive el viaje por JSON")
	assert.Equal(t, 3, out[0].Quantity)
}

// Clave ausente: se devuelve el default sin error.
func TestLoad_ClaveAusenteDevuelveDefault(t *testing.T) {
	kv := storage.NewMemoryKV()
	def := entity.DefaultGoldPrices(time.Now())

	out := storage.Load(context.Background(), kv, logger.Nop(), storage.KeyPrices, def)
	assert.Equal(t, def, out)
}

// Valor corrupto: se descarta y se devuelve el default.
func TestLoad_ValorCorruptoDevuelveDefault(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, storage.KeySales, []byte("{esto no es json")))

	out := storage.Load(ctx, kv, logger.Nop(), storage.KeySales, []entity.Sale{})
	assert.Empty(t, out)
}

// El adaptador en memoria copia los bytes: mutar el slice original no afecta
// lo guardado.
func TestMemoryKV_CopiaBytes(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	buf := []byte(`{"a":1}`)
	require.NoError(t, kv.Set(ctx, "k", buf))
	buf[0] = 'X'

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestMemoryKV_GetAusente(t *testing.T) {
	kv := storage.NewMemoryKV()
	_, ok, err := kv.Get(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.False(t, ok)
}
