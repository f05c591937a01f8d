package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/domain/pricing"
)

// ProductUseCase casos de uso CRUD para piezas del inventario. El precio de
// venta no se guarda: se calcula siempre con la tabla de precios vigente.
type ProductUseCase struct {
	store *store.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(st *store.Store) *ProductUseCase {
	return &ProductUseCase{store: st}
}

// Create valida la pieza y la agrega al inventario.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	karat := entity.Karat(in.Karat)
	if !karat.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Weight.IsNegative() || in.Quantity < 0 || in.MakingChargePerGram.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p := entity.Product{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		Category:            in.Category,
		Karat:               karat,
		Weight:              in.Weight,
		Quantity:            in.Quantity,
		MakingChargePerGram: in.MakingChargePerGram,
		CostPricePerGram:    in.CostPricePerGram,
		Description:         in.Description,
		ImageURL:            in.ImageURL,
	}
	uc.store.AddProduct(ctx, p)
	return uc.toResponse(p), nil
}

// GetByID obtiene una pieza por id.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, ok := uc.store.FindProduct(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(p), nil
}

// Update aplica los campos presentes y reemplaza la pieza.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, ok := uc.store.FindProduct(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Karat != nil {
		karat := entity.Karat(*in.Karat)
		if !karat.Valid() {
			return nil, domain.ErrInvalidInput
		}
		p.Karat = karat
	}
	if in.Weight != nil {
		if in.Weight.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Weight = *in.Weight
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Quantity = *in.Quantity
	}
	if in.MakingChargePerGram != nil {
		if in.MakingChargePerGram.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.MakingChargePerGram = *in.MakingChargePerGram
	}
	if in.CostPricePerGram != nil {
		p.CostPricePerGram = *in.CostPricePerGram
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if !uc.store.UpdateProduct(ctx, p) {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(p), nil
}

// Delete elimina la pieza; no-op si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) {
	uc.store.DeleteProduct(ctx, id)
}

// List lista el inventario completo en orden de inserción.
func (uc *ProductUseCase) List() []dto.ProductResponse {
	products := uc.store.Products()
	prices := uc.store.GoldPrices()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p, pricing.UnitPrice(p, prices)))
	}
	return out
}

func (uc *ProductUseCase) toResponse(p entity.Product) *dto.ProductResponse {
	return toProductResponse(p, pricing.UnitPrice(p, uc.store.GoldPrices()))
}

func toProductResponse(p entity.Product, unitPrice decimal.Decimal) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Category:            p.Category,
		Karat:               string(p.Karat),
		Weight:              p.Weight,
		Quantity:            p.Quantity,
		MakingChargePerGram: p.MakingChargePerGram,
		CostPricePerGram:    p.CostPricePerGram,
		Description:         p.Description,
		ImageURL:            p.ImageURL,
		UnitPrice:           unitPrice,
	}
}
