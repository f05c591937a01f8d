package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/ports"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

// Textos fijos de cortesía cuando el servicio de IA no está disponible.
// Cualquier fallo (credencial ausente, red, respuesta malformada) degrada a
// estos textos; nunca se propaga un error al llamador y la operación queda
// reintentable a discreción del usuario.
const (
	FallbackDescription = "عذراً، حدث خطأ أثناء توليد الوصف. يرجى المحاولة لاحقاً."
	FallbackAnalysis    = "لا يمكن إجراء التحليل حالياً."
)

// advisorTimeout tope por llamada al LLM; las latencias externas no deben
// bloquear los goroutines del servidor.
const advisorTimeout = 10 * time.Second

// maxSalesSample máximo de ventas recientes enviadas al análisis.
const maxSalesSample = 20

// AdvisorUseCase orquesta las operaciones del asistente: descripción de
// producto y análisis de tendencias de venta. Solo lectura sobre el estado;
// la salida es únicamente para mostrar.
type AdvisorUseCase struct {
	llm   ports.AdvisorService
	store *store.Store
	log   *logger.Logger
}

// NewAdvisorUseCase construye el caso de uso inyectando el puerto AdvisorService.
func NewAdvisorUseCase(llm ports.AdvisorService, st *store.Store, log *logger.Logger) *AdvisorUseCase {
	return &AdvisorUseCase{llm: llm, store: st, log: log}
}

// DescribeProduct redacta el texto comercial de una pieza. Acepta un
// product_id existente o los atributos sueltos de una pieza aún sin guardar.
func (uc *AdvisorUseCase) DescribeProduct(ctx context.Context, in dto.DescribeProductRequest) (*dto.AdvisorTextDTO, error) {
	var product entity.Product
	if in.ProductID != "" {
		p, ok := uc.store.FindProduct(in.ProductID)
		if !ok {
			return nil, domain.ErrNotFound
		}
		product = p
	} else {
		if in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		weight, _ := decimal.NewFromString(in.Weight)
		product = entity.Product{
			Name:     in.Name,
			Category: in.Category,
			Karat:    entity.Karat(in.Karat),
			Weight:   weight,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, advisorTimeout)
	defer cancel()

	text, err := uc.llm.DescribeProduct(ctx, product)
	if err != nil {
		uc.log.Warn().Err(err).Msg("advisor: descripción degradada al texto fijo")
		return &dto.AdvisorTextDTO{Text: FallbackDescription, Fallback: true}, nil
	}
	return &dto.AdvisorTextDTO{Text: strings.TrimSpace(text)}, nil
}

// SummarizeSales analiza hasta las 20 ventas más recientes.
func (uc *AdvisorUseCase) SummarizeSales(ctx context.Context) (*dto.AdvisorTextDTO, error) {
	sales := uc.store.Sales()
	if len(sales) > maxSalesSample {
		sales = sales[:maxSalesSample]
	}

	ctx, cancel := context.WithTimeout(ctx, advisorTimeout)
	defer cancel()

	text, err := uc.llm.SummarizeSales(ctx, sales)
	if err != nil {
		uc.log.Warn().Err(err).Msg("advisor: análisis degradado al texto fijo")
		return &dto.AdvisorTextDTO{Text: FallbackAnalysis, Fallback: true}, nil
	}
	return &dto.AdvisorTextDTO{Text: strings.TrimSpace(text)}, nil
}
