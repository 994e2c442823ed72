package dto

import "github.com/shopspring/decimal"

// KPISummaryDTO KPIs principales del resumen ejecutivo.
// Las tasas son porcentajes en [0,100] con 2 decimales; null si la tabla fuente está vacía.
type KPISummaryDTO struct {
	TotalOrders        int    `json:"total_orders"`
	TotalOrdersDisplay string `json:"total_orders_display"` // ej: "1.5K"

	OnTimeDeliveryRate *float64 `json:"on_time_delivery_rate"`
	AvgFulfillmentRate *float64 `json:"avg_fulfillment_rate"`
	AvgDelayDays       *float64 `json:"avg_delay_days"`

	TotalSupplyChainCost        decimal.Decimal `json:"total_supply_chain_cost"`
	TotalSupplyChainCostDisplay string          `json:"total_supply_chain_cost_display"` // ej: "2.5M"

	SupplierPerformance *float64 `json:"supplier_performance"`
	StockStatus         *float64 `json:"stock_status"`
}

// InsightDTO mensaje del motor de reglas.
type InsightDTO struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"` // warning | healthy | indeterminate
	Message  string `json:"message"`
}

// CostBreakdownDTO suma de costos por categoría.
type CostBreakdownDTO struct {
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`  // notación compacta, ej: "1.2M"
	FullValue string          `json:"full_value"` // ej: "$1,234,567.89"
}

// ExecutiveSummaryDTO respuesta de GET /api/dashboard/summary.
type ExecutiveSummaryDTO struct {
	SnapshotID    string             `json:"snapshot_id"`
	LoadedAt      string             `json:"loaded_at"`
	KPIs          KPISummaryDTO      `json:"kpis"`
	Insights      []InsightDTO       `json:"insights"`
	CostBreakdown []CostBreakdownDTO `json:"cost_breakdown"`
}
