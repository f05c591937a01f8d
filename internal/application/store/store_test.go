package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

func newTestStore(t *testing.T) (*store.Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	return store.New(context.Background(), kv, logger.Nop()), kv
}

func anillo() entity.Product {
	return entity.Product{
		ID:                  "p1",
		Name:                "خاتم ذهب",
		Category:            "خواتم",
		Karat:               entity.Karat21,
		Weight:              decimal.NewFromInt(5),
		Quantity:            10,
		MakingChargePerGram: decimal.NewFromInt(100),
	}
}

func ventaDe(productID string, qty int, total int64, customerID string) entity.Sale {
	item := entity.CartItem{
		Product:    entity.Product{ID: productID, Quantity: qty},
		TotalPrice: decimal.NewFromInt(total),
	}
	return entity.Sale{
		ID:         "s1",
		CustomerID: customerID,
		Items:      []entity.CartItem{item},
		Total:      decimal.NewFromInt(total),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas: efectos derivados
// ──────────────────────────────────────────────────────────────────────────────

// Cada línea vendida descuenta exactamente su cantidad del stock.
func TestAddSale_DescuentaStock(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddProduct(ctx, anillo())

	s.AddSale(ctx, ventaDe("p1", 3, 55950, ""))

	p, ok := s.FindProduct("p1")
	require.True(t, ok)
	assert.Equal(t, 7, p.Quantity)
}

// El stock puede quedar negativo; no se recorta a cero.
func TestAddSale_StockNegativoNoSeRecorta(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddProduct(ctx, anillo())

	s.AddSale(ctx, ventaDe("p1", 12, 223800, ""))

	p, ok := s.FindProduct("p1")
	require.True(t, ok)
	assert.Equal(t, -2, p.Quantity)
}

// Venta con cliente acumula el total en sus compras.
func TestAddSale_AcumulaComprasDelCliente(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddProduct(ctx, anillo())
	s.AddCustomer(ctx, entity.Customer{ID: "c1", Name: "سارة", TotalPurchases: decimal.Zero})

	s.AddSale(ctx, ventaDe("p1", 1, 18650, "c1"))
	s.AddSale(ctx, ventaDe("p1", 2, 37300, "c1"))

	c, ok := s.FindCustomer("c1")
	require.True(t, ok)
	assert.True(t, c.TotalPurchases.Equal(decimal.NewFromInt(55950)),
		"total acumulado esperado 55950, obtenido %s", c.TotalPurchases)
}

// Referencias rotas no detienen el comando: la venta queda registrada y el
// resto del estado no cambia.
func TestAddSale_ReferenciasInexistentesNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddProduct(ctx, anillo())

	s.AddSale(ctx, ventaDe("fantasma", 3, 100, "cliente-fantasma"))

	assert.Len(t, s.Sales(), 1, "la venta se registra aunque las referencias no existan")
	p, _ := s.FindProduct("p1")
	assert.Equal(t, 10, p.Quantity, "el stock de otros productos no cambia")
}

// El log de ventas se mantiene con la más reciente primero.
func TestAddSale_OrdenMasRecientePrimero(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	primera := ventaDe("p1", 1, 100, "")
	primera.ID = "s-vieja"
	segunda := ventaDe("p1", 1, 200, "")
	segunda.ID = "s-nueva"
	s.AddSale(ctx, primera)
	s.AddSale(ctx, segunda)

	sales := s.Sales()
	require.Len(t, sales, 2)
	assert.Equal(t, "s-nueva", sales[0].ID)
	assert.Equal(t, "s-vieja", sales[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Suministros: efectos derivados
// ──────────────────────────────────────────────────────────────────────────────

// Una recepción sube el stock por la cantidad completa pero cuenta una sola
// entrega al proveedor, sin importar las unidades.
func TestAddSupplyTransaction_Efectos(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddProduct(ctx, anillo())
	s.AddSupplier(ctx, entity.Supplier{ID: "sup1", Name: "مصنع الذهب"})

	s.AddSupplyTransaction(ctx, entity.SupplyTransaction{
		ID: "t1", SupplierID: "sup1", ProductID: "p1", Quantity: 5,
		TotalCost: decimal.NewFromInt(90000),
	})

	p, _ := s.FindProduct("p1")
	assert.Equal(t, 15, p.Quantity)

	sup, _ := s.FindSupplier("sup1")
	assert.Equal(t, 1, sup.ItemsSupplied, "una recepción = una entrega, sin importar la cantidad")
}

func TestAddSupplyTransaction_OrdenMasRecientePrimero(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddSupplyTransaction(ctx, entity.SupplyTransaction{ID: "t-vieja"})
	s.AddSupplyTransaction(ctx, entity.SupplyTransaction{ID: "t-nueva"})

	list := s.SupplyTransactions()
	require.Len(t, list, 2)
	assert.Equal(t, "t-nueva", list[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precios del oro
// ──────────────────────────────────────────────────────────────────────────────

// El upsert nunca duplica registros por quilataje.
func TestUpdateGoldPrice_UpsertSinDuplicados(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	base := len(s.GoldPrices())

	s.UpdateGoldPrice(ctx, entity.Karat21, decimal.NewFromInt(3700))
	s.UpdateGoldPrice(ctx, entity.Karat21, decimal.NewFromInt(3750))
	s.UpdateGoldPrice(ctx, entity.Karat14, decimal.NewFromInt(2500))

	prices := s.GoldPrices()
	assert.Len(t, prices, base+1, "solo el quilataje nuevo agrega registro")

	var got decimal.Decimal
	for _, p := range prices {
		if p.Karat == entity.Karat21 {
			got = p.Price
		}
	}
	assert.True(t, got.Equal(decimal.NewFromInt(3750)), "gana la última actualización")
}

// La tabla arranca con los precios por defecto cuando el almacén está vacío.
func TestNew_SiembraPreciosPorDefecto(t *testing.T) {
	s, _ := newTestStore(t)
	prices := s.GoldPrices()
	require.Len(t, prices, 4)
	assert.Equal(t, entity.Karat24, prices[0].Karat)
}

// ──────────────────────────────────────────────────────────────────────────────
// Write-through y recarga
// ──────────────────────────────────────────────────────────────────────────────

// Tras un comando, las colecciones tocadas quedan en el almacén y un gestor
// nuevo sobre el mismo almacén reconstruye el mismo estado.
func TestStore_PersisteYRecarga(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	s := store.New(ctx, kv, logger.Nop())

	s.AddProduct(ctx, anillo())
	s.AddCustomer(ctx, entity.Customer{ID: "c1", Name: "سارة"})
	s.AddSale(ctx, ventaDe("p1", 2, 37300, "c1"))

	// Claves tocadas por la venta presentes en el almacén.
	for _, key := range []string{storage.KeyProducts, storage.KeyCustomers, storage.KeySales} {
		raw, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "clave %s debe estar persistida", key)
		require.True(t, json.Valid(raw), "el valor de %s debe ser JSON válido", key)
	}

	reloaded := store.New(ctx, kv, logger.Nop())
	p, ok := reloaded.FindProduct("p1")
	require.True(t, ok)
	assert.Equal(t, 8, p.Quantity)

	c, ok := reloaded.FindCustomer("c1")
	require.True(t, ok)
	assert.True(t, c.TotalPurchases.Equal(decimal.NewFromInt(37300)))

	assert.Len(t, reloaded.Sales(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginLogout_PersisteSesion(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	s := store.New(ctx, kv, logger.Nop())

	s.Login(ctx, entity.User{ID: "1", Username: "admin", Name: "المدير العام", Role: entity.RoleAdmin})

	reloaded := store.New(ctx, kv, logger.Nop())
	u := reloaded.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)

	s.Logout(ctx)
	reloaded = store.New(ctx, kv, logger.Nop())
	assert.Nil(t, reloaded.CurrentUser())
}

// Productos: update reemplaza en el lugar y delete es idempotente.
func TestProductCommands(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddProduct(ctx, anillo())

	updated := anillo()
	updated.Quantity = 99
	require.True(t, s.UpdateProduct(ctx, updated))

	p, _ := s.FindProduct("p1")
	assert.Equal(t, 99, p.Quantity)

	assert.False(t, s.UpdateProduct(ctx, entity.Product{ID: "nope"}),
		"actualizar un id inexistente devuelve false")

	s.DeleteProduct(ctx, "p1")
	s.DeleteProduct(ctx, "p1") // idempotente
	assert.Empty(t, s.Products())
}
