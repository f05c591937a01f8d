package ports

import (
	"context"

	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

// AdvisorService define el puerto de salida hacia el servicio de generación
// de texto. Cualquier adaptador (Gemini, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato. Las llamadas son
// request/response sin reintentos y nunca mutan el estado del dominio.
type AdvisorService interface {
	// DescribeProduct redacta un texto comercial corto para la pieza.
	// El contexto debe llevar timeout para no bloquear llamadas externas.
	DescribeProduct(ctx context.Context, product entity.Product) (string, error)

	// SummarizeSales analiza una muestra de ventas recientes y devuelve
	// recomendaciones en texto libre.
	SummarizeSales(ctx context.Context, sales []entity.Sale) (string, error)
}
