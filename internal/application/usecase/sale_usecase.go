package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/domain/pricing"
)

// SaleUseCase cierre de ventas (punto de venta) y consulta del log.
type SaleUseCase struct {
	store *store.Store
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(st *store.Store) *SaleUseCase {
	return &SaleUseCase{store: st}
}

// Checkout arma los snapshots del carrito con la tarifa de oro vigente y
// cierra la venta. La tarifa por gramo y el total de línea quedan congelados
// en la venta: cambios de precio posteriores no alteran ventas históricas.
// Referencias a productos o clientes inexistentes se rechazan aquí; el
// comando AddSale del gestor de estado permanece permisivo.
func (uc *SaleUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}
	if payment != entity.PaymentCash && payment != entity.PaymentCard && payment != entity.PaymentTransfer {
		return nil, domain.ErrInvalidInput
	}

	customerName := entity.CashCustomerName
	if in.CustomerID != "" {
		customer, ok := uc.store.FindCustomer(in.CustomerID)
		if !ok {
			return nil, domain.ErrNotFound
		}
		customerName = customer.Name
	}

	prices := uc.store.GoldPrices()
	items := make([]entity.CartItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, ok := uc.store.FindProduct(line.ProductID)
		if !ok {
			return nil, domain.ErrNotFound
		}
		unit := pricing.UnitPrice(product, prices)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))

		snapshot := product
		snapshot.Quantity = line.Quantity
		items = append(items, entity.CartItem{
			Product:           snapshot,
			SalesPricePerGram: pricing.RateFor(product.Karat, prices, pricing.FallbackSaleRate),
			TotalPrice:        lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	sale := entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		CustomerName:  customerName,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		Tax:           in.Tax,
		Total:         subtotal.Sub(in.Discount).Add(in.Tax),
		Date:          time.Now(),
		PaymentMethod: payment,
	}
	uc.store.AddSale(ctx, sale)
	return ToSaleResponse(sale), nil
}

// List log de ventas, más reciente primero.
func (uc *SaleUseCase) List() []dto.SaleResponse {
	sales := uc.store.Sales()
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *ToSaleResponse(s))
	}
	return out
}

// GetByID obtiene una venta por id.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	s, ok := uc.store.FindSale(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ToSaleResponse(s), nil
}

// ToSaleResponse mapea una venta del dominio a su DTO.
func ToSaleResponse(s entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:         it.ID,
			Name:              it.Name,
			Karat:             string(it.Karat),
			Weight:            it.Weight,
			Quantity:          it.Quantity,
			SalesPricePerGram: it.SalesPricePerGram,
			TotalPrice:        it.TotalPrice,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Items:         items,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		Date:          s.Date,
		PaymentMethod: s.PaymentMethod,
	}
}
