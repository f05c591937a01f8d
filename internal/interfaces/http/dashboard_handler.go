package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Thahab-api/internal/application/analytics"
)

// DashboardHandler expone el resumen del dashboard y los reportes (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary resumen general del negocio.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}

// SalesReport reporte de ventas: totales por día, promedio y últimas transacciones.
// GET /api/reports/sales
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSalesReport())
}

// InventoryReport reporte de inventario: distribución por quilataje y stock bajo.
// GET /api/reports/inventory
func (h *DashboardHandler) InventoryReport(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetInventoryReport())
}
