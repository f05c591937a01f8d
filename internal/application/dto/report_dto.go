package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO vista general del negocio.
type DashboardSummaryDTO struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	SalesCount     int             `json:"sales_count"`
	TotalItemsSold int             `json:"total_items_sold"`
	LowStockCount  int             `json:"low_stock_count"`
	InventoryValue decimal.Decimal `json:"inventory_value"` // estimado con el precio del oro vigente
}

// SalesByDayDTO total vendido en un día calendario.
type SalesByDayDTO struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
}

// SalesReportDTO reporte de ventas.
type SalesReportDTO struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	SalesCount       int             `json:"sales_count"`
	AverageSaleValue decimal.Decimal `json:"average_sale_value"`
	ByDay            []SalesByDayDTO `json:"by_day"`
	Recent           []SaleResponse  `json:"recent"`
}

// KaratStockDTO unidades en stock de un quilataje.
type KaratStockDTO struct {
	Karat    string `json:"karat"`
	Quantity int    `json:"quantity"`
}

// InventoryReportDTO reporte de inventario.
type InventoryReportDTO struct {
	ByKarat         []KaratStockDTO   `json:"by_karat"`
	TotalStockItems int               `json:"total_stock_items"`
	TotalWeight     decimal.Decimal   `json:"total_weight"` // gramos (peso * cantidad)
	LowStock        []ProductResponse `json:"low_stock"`
}
