// Package analytics contiene los casos de uso de reportes del negocio:
// resumen del dashboard, reporte de ventas y reporte de inventario. Solo
// lectura; todo es agregación en memoria sobre las colecciones del gestor
// de estado.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/application/usecase"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/domain/pricing"
)

// LowStockThreshold piezas con menos unidades que esto disparan la alerta.
const LowStockThreshold = 3

// recentSalesLimit ventas mostradas en la tabla de últimas transacciones.
const recentSalesLimit = 5

// DashboardUseCase agregados de negocio para el dashboard y los reportes.
type DashboardUseCase struct {
	store *store.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(st *store.Store) *DashboardUseCase {
	return &DashboardUseCase{store: st}
}

// GetSummary vista general: ingresos, ventas, líneas vendidas, alertas de
// stock y valor estimado del inventario al precio del oro vigente.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	sales := uc.store.Sales()
	products := uc.store.Products()
	prices := uc.store.GoldPrices()

	totalRevenue := decimal.Zero
	totalItemsSold := 0
	for _, s := range sales {
		totalRevenue = totalRevenue.Add(s.Total)
		totalItemsSold += len(s.Items)
	}

	lowStock := 0
	inventoryValue := decimal.Zero
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			lowStock++
		}
		rate := pricing.RateFor(p.Karat, prices, pricing.FallbackValuationRate)
		inventoryValue = inventoryValue.Add(
			p.Weight.Mul(rate).Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:   totalRevenue,
		SalesCount:     len(sales),
		TotalItemsSold: totalItemsSold,
		LowStockCount:  lowStock,
		InventoryValue: inventoryValue,
	}
}

// GetSalesReport ingresos totales, ticket promedio, totales por día y las
// últimas transacciones.
func (uc *DashboardUseCase) GetSalesReport() *dto.SalesReportDTO {
	sales := uc.store.Sales()

	totalRevenue := decimal.Zero
	byDay := make(map[string]decimal.Decimal)
	for _, s := range sales {
		totalRevenue = totalRevenue.Add(s.Total)
		day := s.Date.Format("2006-01-02")
		byDay[day] = byDay[day].Add(s.Total)
	}

	days := make([]dto.SalesByDayDTO, 0, len(byDay))
	for day, amount := range byDay {
		days = append(days, dto.SalesByDayDTO{Date: day, Amount: amount})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	average := decimal.Zero
	if len(sales) > 0 {
		average = totalRevenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(0)
	}

	recent := sales
	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}
	recentDTOs := make([]dto.SaleResponse, 0, len(recent))
	for _, s := range recent {
		recentDTOs = append(recentDTOs, *usecase.ToSaleResponse(s))
	}

	return &dto.SalesReportDTO{
		TotalRevenue:     totalRevenue,
		SalesCount:       len(sales),
		AverageSaleValue: average,
		ByDay:            days,
		Recent:           recentDTOs,
	}
}

// GetInventoryReport distribución por quilataje, totales de piezas y peso, y
// la lista de piezas con stock bajo.
func (uc *DashboardUseCase) GetInventoryReport() *dto.InventoryReportDTO {
	products := uc.store.Products()
	prices := uc.store.GoldPrices()

	byKarat := make(map[entity.Karat]int)
	totalItems := 0
	totalWeight := decimal.Zero
	var lowStock []dto.ProductResponse
	for _, p := range products {
		byKarat[p.Karat] += p.Quantity
		totalItems += p.Quantity
		totalWeight = totalWeight.Add(p.Weight.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.Quantity < LowStockThreshold {
			lowStock = append(lowStock, dto.ProductResponse{
				ID:                  p.ID,
				Name:                p.Name,
				Category:            p.Category,
				Karat:               string(p.Karat),
				Weight:              p.Weight,
				Quantity:            p.Quantity,
				MakingChargePerGram: p.MakingChargePerGram,
				CostPricePerGram:    p.CostPricePerGram,
				UnitPrice:           pricing.UnitPrice(p, prices),
			})
		}
	}

	karats := make([]dto.KaratStockDTO, 0, len(byKarat))
	for _, k := range entity.AllKarats {
		if qty, ok := byKarat[k]; ok {
			karats = append(karats, dto.KaratStockDTO{Karat: string(k), Quantity: qty})
		}
	}

	return &dto.InventoryReportDTO{
		ByKarat:         karats,
		TotalStockItems: totalItems,
		TotalWeight:     totalWeight,
		LowStock:        lowStock,
	}
}
