package billing

import "github.com/jhoicas/Thahab-api/internal/domain/entity"

// ReceiptPDFGenerator genera el recibo de una venta en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceipt(sale entity.Sale) ([]byte, error)
}
