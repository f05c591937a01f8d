package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/usecase"
	"github.com/jhoicas/Thahab-api/internal/domain"
)

// GoldPriceHandler maneja la tabla de precios del oro. La lectura es para
// cualquier usuario autenticado; la actualización solo para administradores.
type GoldPriceHandler struct {
	uc *usecase.GoldPriceUseCase
}

// NewGoldPriceHandler construye el handler.
func NewGoldPriceHandler(uc *usecase.GoldPriceUseCase) *GoldPriceHandler {
	return &GoldPriceHandler{uc: uc}
}

// List tabla vigente de precios por quilataje.
// GET /api/gold-prices
func (h *GoldPriceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Update upsert del precio por gramo de un quilataje (solo admin).
// PUT /api/gold-prices
func (h *GoldPriceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGoldPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quilataje desconocido o precio no positivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.uc.List())
}
