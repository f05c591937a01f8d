package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

// SupplierUseCase casos de uso para proveedores y transacciones de suministro.
type SupplierUseCase struct {
	store *store.Store
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(st *store.Store) *SupplierUseCase {
	return &SupplierUseCase{store: st}
}

// Create registra un proveedor nuevo con el contador de entregas en cero.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		Notes:         in.Notes,
	}
	uc.store.AddSupplier(ctx, s)
	return toSupplierResponse(s), nil
}

// List lista los proveedores en orden de inserción.
func (uc *SupplierUseCase) List() []dto.SupplierResponse {
	suppliers := uc.store.Suppliers()
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out
}

// RegisterTransaction valida las referencias y registra la recepción de
// mercancía: sube el stock del producto y cuenta la entrega al proveedor.
// El comando del gestor de estado es permisivo con referencias rotas; este
// es el punto donde se rechazan.
func (uc *SupplierUseCase) RegisterTransaction(ctx context.Context, in dto.CreateSupplyTransactionRequest) (*dto.SupplyTransactionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, ok := uc.store.FindSupplier(in.SupplierID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	product, ok := uc.store.FindProduct(in.ProductID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	t := entity.SupplyTransaction{
		ID:           uuid.New().String(),
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     in.Quantity,
		TotalCost:    in.TotalCost,
		Date:         time.Now(),
	}
	uc.store.AddSupplyTransaction(ctx, t)
	return toSupplyTransactionResponse(t), nil
}

// ListTransactions log de suministros, más reciente primero.
func (uc *SupplierUseCase) ListTransactions() []dto.SupplyTransactionResponse {
	list := uc.store.SupplyTransactions()
	out := make([]dto.SupplyTransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toSupplyTransactionResponse(t))
	}
	return out
}

func toSupplierResponse(s entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Notes:         s.Notes,
		ItemsSupplied: s.ItemsSupplied,
	}
}

func toSupplyTransactionResponse(t entity.SupplyTransaction) *dto.SupplyTransactionResponse {
	return &dto.SupplyTransactionResponse{
		ID:           t.ID,
		SupplierID:   t.SupplierID,
		SupplierName: t.SupplierName,
		ProductID:    t.ProductID,
		ProductName:  t.ProductName,
		Quantity:     t.Quantity,
		TotalCost:    t.TotalCost,
		Date:         t.Date,
	}
}
