package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/numfmt"
)

// KPIs métricas escalares del resumen ejecutivo.
// Las métricas basadas en promedios valen NaN cuando la tabla fuente no aporta filas.
type KPIs struct {
	TotalOrders          int
	OnTimeDeliveryRate   float64 // % pedidos con retraso <= 0 (2 decimales)
	AvgFulfillmentRate   float64 // % promedio cumplido/pedido (2 decimales)
	AvgDelayDays         float64 // días (2 decimales)
	TotalSupplyChainCost decimal.Decimal
	SupplierPerformance  float64 // (on-time promedio + calidad promedio) / 2
	StockStatus          float64 // % registros con stock >= reorden
}

// ComputeKPIs calcula todos los KPIs a partir de un snapshot normalizado.
// Es una función pura: el mismo snapshot produce siempre el mismo resultado.
func ComputeKPIs(snap *dataset.Snapshot) KPIs {
	orders := snap.Orders()
	return KPIs{
		TotalOrders:          len(orders),
		OnTimeDeliveryRate:   OnTimeDeliveryRate(orders),
		AvgFulfillmentRate:   AvgFulfillmentRate(orders),
		AvgDelayDays:         AvgDelayDays(orders),
		TotalSupplyChainCost: TotalCost(snap.Costs()),
		SupplierPerformance:  SupplierPerformance(snap.Suppliers()),
		StockStatus:          StockStatus(snap.Inventory()),
	}
}

// ToDTO representación JSON de los KPIs con sus formatos compactos.
func (k KPIs) ToDTO() dto.KPISummaryDTO {
	return dto.KPISummaryDTO{
		TotalOrders:                 k.TotalOrders,
		TotalOrdersDisplay:          numfmt.Compact(float64(k.TotalOrders)),
		OnTimeDeliveryRate:          dto.Float(k.OnTimeDeliveryRate),
		AvgFulfillmentRate:          dto.Float(k.AvgFulfillmentRate),
		AvgDelayDays:                dto.Float(k.AvgDelayDays),
		TotalSupplyChainCost:        k.TotalSupplyChainCost,
		TotalSupplyChainCostDisplay: numfmt.CompactDecimal(k.TotalSupplyChainCost),
		SupplierPerformance:         dto.Float(k.SupplierPerformance),
		StockStatus:                 dto.Float(k.StockStatus),
	}
}

// OnTimeDeliveryRate porcentaje de pedidos entregados a tiempo.
// Los pedidos sin retraso conocido (fechas inválidas) no cuentan en el denominador.
func OnTimeDeliveryRate(orders []entity.Order) float64 {
	known, onTime := 0, 0
	for _, o := range orders {
		if !o.HasDelay {
			continue
		}
		known++
		if o.IsOnTime() {
			onTime++
		}
	}
	return round(percent(onTime, known), 2)
}

// AvgFulfillmentRate promedio de cumplido/pedido * 100.
// Filas con cantidad pedida en cero tienen ratio indefinido y se excluyen.
func AvgFulfillmentRate(orders []entity.Order) float64 {
	ratios := make([]float64, 0, len(orders))
	for _, o := range orders {
		if r, ok := o.FulfillmentRatio(); ok {
			ratios = append(ratios, r)
		}
	}
	return round(mean(ratios)*100, 2)
}

// AvgDelayDays retraso promedio en días sobre los pedidos con retraso conocido.
func AvgDelayDays(orders []entity.Order) float64 {
	delays := make([]float64, 0, len(orders))
	for _, o := range orders {
		if o.HasDelay {
			delays = append(delays, float64(o.DelayDays))
		}
	}
	return round(mean(delays), 2)
}

// TotalCost suma de todos los costos (sin redondeo).
func TotalCost(costs []entity.CostEntry) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(c.Amount)
	}
	return total
}

// SupplierPerformance (promedio on-time + promedio calidad) / 2.
func SupplierPerformance(suppliers []entity.Supplier) float64 {
	onTime := make([]float64, len(suppliers))
	quality := make([]float64, len(suppliers))
	for i, s := range suppliers {
		onTime[i] = s.OnTimeDeliveryRate
		quality[i] = s.QualityRating
	}
	return round((mean(onTime)+mean(quality))/2, 2)
}

// StockStatus porcentaje de registros con stock igual o superior al punto de reorden.
func StockStatus(inventory []entity.InventoryRecord) float64 {
	above := 0
	for _, r := range inventory {
		if r.AboveReorder() {
			above++
		}
	}
	return round(percent(above, len(inventory)), 2)
}
