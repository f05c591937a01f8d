// Package billing genera los recibos de venta en PDF.
package billing

import (
	"fmt"

	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

// ReceiptUseCase caso de uso de descarga de recibos.
type ReceiptUseCase struct {
	store *store.Store
	pdf   ReceiptPDFGenerator
	log   *logger.Logger
}

// NewReceiptUseCase construye el caso de uso inyectando el generador de PDF.
func NewReceiptUseCase(st *store.Store, pdf ReceiptPDFGenerator, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{store: st, pdf: pdf, log: log}
}

// DownloadReceiptPDF genera el PDF del recibo de una venta existente y
// devuelve el contenido junto con el nombre de archivo sugerido.
func (uc *ReceiptUseCase) DownloadReceiptPDF(saleID string) (body []byte, filename string, err error) {
	sale, ok := uc.store.FindSale(saleID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}

	body, err = uc.pdf.GenerateReceipt(sale)
	if err != nil {
		uc.log.Error().Err(err).Str("sale_id", saleID).Msg("error generando recibo PDF")
		return nil, "", fmt.Errorf("generando recibo: %w", err)
	}
	filename = fmt.Sprintf("receipt-%s.pdf", sale.ID)
	return body, filename, nil
}
