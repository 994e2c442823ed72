// Package insights evalúa las reglas de negocio sobre los KPIs y produce
// un mensaje por regla, siempre en el mismo orden.
package insights

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/analytics"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/numfmt"
)

// Severity resultado de una regla.
type Severity string

const (
	SeverityWarning       Severity = "warning"
	SeverityHealthy       Severity = "healthy"
	SeverityIndeterminate Severity = "indeterminate" // el KPI no se pudo calcular
)

// Umbrales de las reglas.
const (
	MinFulfillmentRate     = 90.0
	MaxAvgDelayDays        = 3.0
	MinOnTimeDeliveryRate  = 95.0
	MinSupplierPerformance = 75.0
	MinStockStatus         = 50.0
)

// MaxSupplyChainCost umbral de costo total.
var MaxSupplyChainCost = decimal.NewFromInt(1_000_000)

// Rule regla de negocio. Metric NaN marca la regla como indeterminada.
type Rule struct {
	Name    string
	Metric  func(analytics.KPIs) float64
	Breach  func(analytics.KPIs) bool
	Warn    func(analytics.KPIs) string
	Healthy string
}

// Rules tabla ordenada de reglas; el orden es el orden de los mensajes.
var Rules = []Rule{
	{
		Name:   "fulfillment_rate",
		Metric: func(k analytics.KPIs) float64 { return k.AvgFulfillmentRate },
		Breach: func(k analytics.KPIs) bool { return k.AvgFulfillmentRate < MinFulfillmentRate },
		Warn: func(k analytics.KPIs) string {
			return fmt.Sprintf("⚠️ Fulfillment rate is below 90%% (%s%%). Consider optimizing supply chain efficiency.", numfmt.Plain(k.AvgFulfillmentRate))
		},
		Healthy: "✅ Fulfillment rate is healthy. Keep maintaining efficiency.",
	},
	{
		Name:   "delivery_delay",
		Metric: func(k analytics.KPIs) float64 { return k.AvgDelayDays },
		Breach: func(k analytics.KPIs) bool { return k.AvgDelayDays > MaxAvgDelayDays },
		Warn: func(k analytics.KPIs) string {
			return fmt.Sprintf("⚠️ Orders are delayed on average by %s days. Investigate delivery bottlenecks.", numfmt.Plain(k.AvgDelayDays))
		},
		Healthy: "✅ Delivery delays are minimal, ensuring customer satisfaction.",
	},
	{
		Name:   "on_time_delivery",
		Metric: func(k analytics.KPIs) float64 { return k.OnTimeDeliveryRate },
		Breach: func(k analytics.KPIs) bool { return k.OnTimeDeliveryRate < MinOnTimeDeliveryRate },
		Warn: func(k analytics.KPIs) string {
			return fmt.Sprintf("⚠️ On-time delivery rate is only %s%%. Consider supplier and logistics improvements.", numfmt.Plain(k.OnTimeDeliveryRate))
		},
		Healthy: "✅ On-time delivery rate is strong. Customers are receiving orders on time.",
	},
	{
		Name:   "supply_chain_cost",
		Metric: func(k analytics.KPIs) float64 { return k.TotalSupplyChainCost.InexactFloat64() },
		Breach: func(k analytics.KPIs) bool { return k.TotalSupplyChainCost.GreaterThan(MaxSupplyChainCost) },
		Warn: func(k analytics.KPIs) string {
			return fmt.Sprintf("⚠️ Supply chain costs exceed $1M (%s). Review high-cost areas for potential savings.", numfmt.Currency(k.TotalSupplyChainCost))
		},
		Healthy: "✅ Supply chain costs are under control.",
	},
	{
		Name:   "supplier_performance",
		Metric: func(k analytics.KPIs) float64 { return k.SupplierPerformance },
		Breach: func(k analytics.KPIs) bool { return k.SupplierPerformance < MinSupplierPerformance },
		Warn: func(k analytics.KPIs) string {
			return fmt.Sprintf("⚠️ Supplier performance score is low (%s). Consider renegotiating contracts or finding new suppliers.", numfmt.Plain(k.SupplierPerformance))
		},
		Healthy: "✅ Suppliers are performing well.",
	},
	{
		Name:   "stock_status",
		Metric: func(k analytics.KPIs) float64 { return k.StockStatus },
		Breach: func(k analytics.KPIs) bool { return k.StockStatus < MinStockStatus },
		Warn: func(k analytics.KPIs) string {
			return fmt.Sprintf("⚠️ Only %s%% of warehouses are above reorder levels. Risk of stockouts.", numfmt.Plain(k.StockStatus))
		},
		Healthy: "✅ Inventory levels are healthy.",
	},
}

// Evaluate aplica todas las reglas en orden. Siempre devuelve len(Rules) mensajes.
// Un KPI indeterminado (NaN) no dispara advertencia ni se reporta como sano.
func Evaluate(k analytics.KPIs) []dto.InsightDTO {
	out := make([]dto.InsightDTO, 0, len(Rules))
	for _, r := range Rules {
		out = append(out, r.evaluate(k))
	}
	return out
}

func (r Rule) evaluate(k analytics.KPIs) dto.InsightDTO {
	switch {
	case math.IsNaN(r.Metric(k)):
		return dto.InsightDTO{
			Rule:     r.Name,
			Severity: string(SeverityIndeterminate),
			Message:  fmt.Sprintf("ℹ️ Not enough data to evaluate %s.", r.Name),
		}
	case r.Breach(k):
		return dto.InsightDTO{Rule: r.Name, Severity: string(SeverityWarning), Message: r.Warn(k)}
	default:
		return dto.InsightDTO{Rule: r.Name, Severity: string(SeverityHealthy), Message: r.Healthy}
	}
}
