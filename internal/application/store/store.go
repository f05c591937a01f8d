// Package store contiene el gestor de estado del dominio: el dueño único de
// todas las colecciones del negocio. Cada mutación entra por un comando con
// nombre; ningún componente externo modifica campos directamente. Tras cada
// comando, las colecciones tocadas se sincronizan al almacén clave-valor
// (write-through), cada una bajo su propia clave y sin transaccionalidad
// entre claves.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

// Store gestor de estado. El mutex garantiza que los comandos son atómicos y
// nunca se intercalan aunque los handlers HTTP corran concurrentes; dentro de
// un comando todas las mutaciones ocurren en un único ciclo síncrono.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	log *logger.Logger

	user               *entity.User
	products           []entity.Product
	customers          []entity.Customer
	sales              []entity.Sale
	suppliers          []entity.Supplier
	supplyTransactions []entity.SupplyTransaction
	goldPrices         []entity.GoldPrice
}

// New carga todas las colecciones desde el almacén. Claves ausentes o
// corruptas caen al default del llamador; los precios de oro inician con la
// tabla por defecto la primera vez.
func New(ctx context.Context, kv storage.KV, log *logger.Logger) *Store {
	s := &Store{kv: kv, log: log}
	s.user = storage.Load[*entity.User](ctx, kv, log, storage.KeyUser, nil)
	s.products = storage.Load(ctx, kv, log, storage.KeyProducts, []entity.Product{})
	s.customers = storage.Load(ctx, kv, log, storage.KeyCustomers, []entity.Customer{})
	s.sales = storage.Load(ctx, kv, log, storage.KeySales, []entity.Sale{})
	s.suppliers = storage.Load(ctx, kv, log, storage.KeySuppliers, []entity.Supplier{})
	s.supplyTransactions = storage.Load(ctx, kv, log, storage.KeySupplyTransactions, []entity.SupplyTransaction{})
	s.goldPrices = storage.Load(ctx, kv, log, storage.KeyPrices, entity.DefaultGoldPrices(time.Now()))
	return s
}

// ── Sesión ────────────────────────────────────────────────────────────────────

// Login fija la sesión actual al usuario dado.
func (s *Store) Login(ctx context.Context, u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	storage.Save(ctx, s.kv, s.log, storage.KeyUser, s.user)
}

// Logout limpia la sesión actual (no borra la cuenta).
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	storage.Save(ctx, s.kv, s.log, storage.KeyUser, s.user)
}

// CurrentUser devuelve la sesión actual, o nil si no hay usuario.
func (s *Store) CurrentUser() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// ── Productos ─────────────────────────────────────────────────────────────────

// AddProduct agrega el producto al final de la lista. El id lo asigna el
// llamador.
func (s *Store) AddProduct(ctx context.Context, p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	storage.Save(ctx, s.kv, s.log, storage.KeyProducts, s.products)
}

// UpdateProduct reemplaza el producto con el mismo id. Devuelve false si no
// existe.
func (s *Store) UpdateProduct(ctx context.Context, p entity.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			storage.Save(ctx, s.kv, s.log, storage.KeyProducts, s.products)
			return true
		}
	}
	return false
}

// DeleteProduct elimina el producto por id; no-op si no existe.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	storage.Save(ctx, s.kv, s.log, storage.KeyProducts, s.products)
}

// Products copia de la lista de productos, en orden de inserción.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product(nil), s.products...)
}

// FindProduct devuelve el primer producto con ese id.
func (s *Store) FindProduct(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// AddCustomer agrega el cliente al final de la lista.
func (s *Store) AddCustomer(ctx context.Context, c entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
	storage.Save(ctx, s.kv, s.log, storage.KeyCustomers, s.customers)
}

// Customers copia de la lista de clientes.
func (s *Store) Customers() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Customer(nil), s.customers...)
}

// FindCustomer devuelve el primer cliente con ese id.
func (s *Store) FindCustomer(id string) (entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// AddSale antepone la venta al log (más reciente primero) y aplica sus
// efectos derivados: por cada línea descuenta la cantidad vendida del
// producto correspondiente, y si la venta tiene cliente acumula el total en
// sus compras. Referencias a productos o clientes inexistentes no detienen
// el comando: la línea se omite y se deja constancia en el log. El stock
// puede quedar negativo; se advierte pero no se recorta.
func (s *Store) AddSale(ctx context.Context, sale entity.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sales = append([]entity.Sale{sale}, s.sales...)

	for _, item := range sale.Items {
		found := false
		for i := range s.products {
			if s.products[i].ID == item.ID {
				s.products[i].Quantity -= item.Quantity
				if s.products[i].Quantity < 0 {
					s.log.Warn().
						Str("product_id", item.ID).
						Int("quantity", s.products[i].Quantity).
						Msg("store: stock negativo tras la venta")
				}
				found = true
				break
			}
		}
		if !found {
			s.log.Warn().Str("product_id", item.ID).Str("sale_id", sale.ID).
				Msg("store: venta referencia un producto inexistente, línea omitida")
		}
	}

	if sale.CustomerID != "" {
		matched := false
		for i := range s.customers {
			if s.customers[i].ID == sale.CustomerID {
				s.customers[i].TotalPurchases = s.customers[i].TotalPurchases.Add(sale.Total)
				matched = true
				break
			}
		}
		if !matched {
			s.log.Warn().Str("customer_id", sale.CustomerID).Str("sale_id", sale.ID).
				Msg("store: venta referencia un cliente inexistente")
		}
	}

	storage.Save(ctx, s.kv, s.log, storage.KeySales, s.sales)
	storage.Save(ctx, s.kv, s.log, storage.KeyProducts, s.products)
	if sale.CustomerID != "" {
		storage.Save(ctx, s.kv, s.log, storage.KeyCustomers, s.customers)
	}
}

// Sales copia del log de ventas, más reciente primero.
func (s *Store) Sales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Sale(nil), s.sales...)
}

// FindSale devuelve la primera venta con ese id.
func (s *Store) FindSale(id string) (entity.Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.sales {
		if v.ID == id {
			return v, true
		}
	}
	return entity.Sale{}, false
}

// ── Precios del oro ───────────────────────────────────────────────────────────

// UpdateGoldPrice upsert por quilataje: si existe registro reemplaza precio y
// fecha en el lugar; si no, inserta uno nuevo. Nunca crece más allá de un
// registro por quilataje.
func (s *Store) UpdateGoldPrice(ctx context.Context, karat entity.Karat, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range s.goldPrices {
		if s.goldPrices[i].Karat == karat {
			s.goldPrices[i].Price = price
			s.goldPrices[i].LastUpdated = now
			storage.Save(ctx, s.kv, s.log, storage.KeyPrices, s.goldPrices)
			return
		}
	}
	s.goldPrices = append(s.goldPrices, entity.GoldPrice{Karat: karat, Price: price, LastUpdated: now})
	storage.Save(ctx, s.kv, s.log, storage.KeyPrices, s.goldPrices)
}

// GoldPrices copia de la tabla de precios vigente.
func (s *Store) GoldPrices() []entity.GoldPrice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.GoldPrice(nil), s.goldPrices...)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// AddSupplier agrega el proveedor al final de la lista.
func (s *Store) AddSupplier(ctx context.Context, sup entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append(s.suppliers, sup)
	storage.Save(ctx, s.kv, s.log, storage.KeySuppliers, s.suppliers)
}

// Suppliers copia de la lista de proveedores.
func (s *Store) Suppliers() []entity.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Supplier(nil), s.suppliers...)
}

// FindSupplier devuelve el primer proveedor con ese id.
func (s *Store) FindSupplier(id string) (entity.Supplier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sup := range s.suppliers {
		if sup.ID == id {
			return sup, true
		}
	}
	return entity.Supplier{}, false
}

// AddSupplyTransaction antepone la transacción al log y aplica sus efectos:
// suma la cantidad recibida al stock del producto y aumenta en exactamente 1
// el contador de entregas del proveedor (independiente de la cantidad).
// Referencias inexistentes se omiten con constancia en el log.
func (s *Store) AddSupplyTransaction(ctx context.Context, t entity.SupplyTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.supplyTransactions = append([]entity.SupplyTransaction{t}, s.supplyTransactions...)

	matched := false
	for i := range s.products {
		if s.products[i].ID == t.ProductID {
			s.products[i].Quantity += t.Quantity
			matched = true
			break
		}
	}
	if !matched {
		s.log.Warn().Str("product_id", t.ProductID).Str("transaction_id", t.ID).
			Msg("store: transacción de suministro referencia un producto inexistente")
	}

	matched = false
	for i := range s.suppliers {
		if s.suppliers[i].ID == t.SupplierID {
			s.suppliers[i].ItemsSupplied++
			matched = true
			break
		}
	}
	if !matched {
		s.log.Warn().Str("supplier_id", t.SupplierID).Str("transaction_id", t.ID).
			Msg("store: transacción de suministro referencia un proveedor inexistente")
	}

	storage.Save(ctx, s.kv, s.log, storage.KeySupplyTransactions, s.supplyTransactions)
	storage.Save(ctx, s.kv, s.log, storage.KeyProducts, s.products)
	storage.Save(ctx, s.kv, s.log, storage.KeySuppliers, s.suppliers)
}

// SupplyTransactions copia del log de suministros, más reciente primero.
func (s *Store) SupplyTransactions() []entity.SupplyTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.SupplyTransaction(nil), s.supplyTransactions...)
}
