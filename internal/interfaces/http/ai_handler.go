package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/usecase"
	"github.com/jhoicas/Thahab-api/internal/domain"
)

// AIHandler expone el asistente: descripción de piezas y análisis de ventas.
// Los fallos del proveedor nunca llegan como error HTTP; el caso de uso los
// degrada a un texto fijo con fallback=true.
type AIHandler struct {
	uc *usecase.AdvisorUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AdvisorUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// DescribeProduct godoc
// @Summary      Generar descripción comercial de una pieza
// @Description  Acepta un product_id existente o los atributos sueltos de una
//               pieza aún sin guardar. Timeout interno de 10 s.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DescribeProductRequest  true  "product_id o atributos de la pieza"
// @Success      200   {object}  dto.AdvisorTextDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ai/describe-product [post]
func (h *AIHandler) DescribeProduct(c *fiber.Ctx) error {
	var in dto.DescribeProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.DescribeProduct(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pieza no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido cuando no se envía product_id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AnalyzeSales análisis de tendencias sobre las ventas recientes.
// POST /api/ai/analyze-sales
func (h *AIHandler) AnalyzeSales(c *fiber.Ctx) error {
	out, err := h.uc.SummarizeSales(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
