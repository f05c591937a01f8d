package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	store *store.Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(st *store.Store) *CustomerUseCase {
	return &CustomerUseCase{store: st}
}

// Create registra un cliente nuevo con el acumulador de compras en cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := entity.Customer{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		Notes:          in.Notes,
		TotalPurchases: decimal.Zero,
	}
	uc.store.AddCustomer(ctx, c)
	return toCustomerResponse(c), nil
}

// List lista los clientes en orden de inserción.
func (uc *CustomerUseCase) List() []dto.CustomerResponse {
	customers := uc.store.Customers()
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out
}

func toCustomerResponse(c entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Notes:          c.Notes,
		TotalPurchases: c.TotalPurchases,
	}
}
