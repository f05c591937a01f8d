package usecase

import (
	"context"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

// GoldPriceUseCase consulta y actualización de la tabla de precios del oro.
type GoldPriceUseCase struct {
	store *store.Store
}

// NewGoldPriceUseCase construye el caso de uso.
func NewGoldPriceUseCase(st *store.Store) *GoldPriceUseCase {
	return &GoldPriceUseCase{store: st}
}

// List tabla vigente de precios por quilataje.
func (uc *GoldPriceUseCase) List() []dto.GoldPriceResponse {
	prices := uc.store.GoldPrices()
	out := make([]dto.GoldPriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, dto.GoldPriceResponse{
			Karat:       string(p.Karat),
			Price:       p.Price,
			LastUpdated: p.LastUpdated,
		})
	}
	return out
}

// Update upsert del precio por gramo de un quilataje.
func (uc *GoldPriceUseCase) Update(ctx context.Context, in dto.UpdateGoldPriceRequest) error {
	karat := entity.Karat(in.Karat)
	if !karat.Valid() {
		return domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() {
		return domain.ErrInvalidInput
	}
	uc.store.UpdateGoldPrice(ctx, karat, in.Price)
	return nil
}
