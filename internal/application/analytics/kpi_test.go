package analytics_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/analytics"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

func sampleSnapshot() *dataset.Snapshot {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return dataset.NewSnapshot("snap-test", day(31), dataset.SnapshotData{
		Orders: []entity.Order{
			{OrderID: "O1", OrderDate: day(1), Status: "Delivered", OrderQuantity: 100, FulfilledQuantity: 90, DelayDays: -1, HasDelay: true},
			{OrderID: "O2", OrderDate: day(2), Status: "Delivered", OrderQuantity: 50, FulfilledQuantity: 50, DelayDays: 0, HasDelay: true},
			{OrderID: "O3", OrderDate: day(3), Status: "Shipped", OrderQuantity: 0, FulfilledQuantity: 0, DelayDays: 5, HasDelay: true},
			{OrderID: "O4", Status: "Pending", OrderQuantity: 10, FulfilledQuantity: 5},
		},
		Costs: []entity.CostEntry{
			{Category: "Logistics", Amount: decimal.RequireFromString("600000.50"), DateRecorded: day(5)},
			{Category: "Warehousing", Amount: decimal.RequireFromString("500000"), DateRecorded: day(6)},
		},
		Suppliers: []entity.Supplier{
			{Name: "Acme", OnTimeDeliveryRate: 90, QualityRating: 70, LeadTimeDays: 5, DefectRate: 2},
			{Name: "Globex", OnTimeDeliveryRate: 80, QualityRating: 60, LeadTimeDays: 3, DefectRate: 4},
		},
		Inventory: []entity.InventoryRecord{
			{ProductID: "P1", WarehouseID: "W1", StockQuantity: 10, ReorderLevel: 10, AvgDemandPerDay: 4},
			{ProductID: "P2", WarehouseID: "W1", StockQuantity: 5, ReorderLevel: 10, AvgDemandPerDay: 1},
			{ProductID: "P3", WarehouseID: "W2", StockQuantity: 20, ReorderLevel: 10, AvgDemandPerDay: 9},
		},
		Forecasts: []entity.ForecastRecord{
			{ForecastDate: day(2), PredictedDemand: 10, ActualDemand: 12, ForecastAccuracy: 83.33},
			{ForecastDate: day(1), PredictedDemand: 20, ActualDemand: 19, ForecastAccuracy: 95.0},
		},
	})
}

func TestComputeKPIs(t *testing.T) {
	k := analytics.ComputeKPIs(sampleSnapshot())

	assert.Equal(t, 4, k.TotalOrders)
	assert.InDelta(t, 66.67, k.OnTimeDeliveryRate, 1e-9, "2 de 3 pedidos con retraso conocido")
	assert.InDelta(t, 80.0, k.AvgFulfillmentRate, 1e-9, "pedidos con cantidad 0 no cuentan")
	assert.InDelta(t, 1.33, k.AvgDelayDays, 1e-9)
	assert.True(t, decimal.RequireFromString("1100000.5").Equal(k.TotalSupplyChainCost))
	assert.InDelta(t, 75.0, k.SupplierPerformance, 1e-9)
	assert.InDelta(t, 66.67, k.StockStatus, 1e-9, "stock igual al reorden cuenta como suficiente")
}

func TestComputeKPIs_TablasVacias(t *testing.T) {
	k := analytics.ComputeKPIs(dataset.NewSnapshot("vacio", time.Now(), dataset.SnapshotData{}))

	assert.Equal(t, 0, k.TotalOrders)
	assert.True(t, math.IsNaN(k.OnTimeDeliveryRate))
	assert.True(t, math.IsNaN(k.AvgFulfillmentRate))
	assert.True(t, math.IsNaN(k.AvgDelayDays))
	assert.True(t, math.IsNaN(k.SupplierPerformance))
	assert.True(t, math.IsNaN(k.StockStatus))
	assert.True(t, k.TotalSupplyChainCost.IsZero())

	d := k.ToDTO()
	assert.Nil(t, d.OnTimeDeliveryRate, "NaN se serializa como null")
	assert.Nil(t, d.StockStatus)
	assert.Equal(t, "0.00", d.TotalOrdersDisplay)
}

func TestComputeKPIs_EsIdempotente(t *testing.T) {
	snap := sampleSnapshot()
	before := snap.Orders()

	first := analytics.ComputeKPIs(snap)
	second := analytics.ComputeKPIs(snap)

	assert.Equal(t, first, second)
	assert.Equal(t, before, snap.Orders(), "el cálculo no debe mutar el snapshot")
}

func TestComputeKPIs_TasasEnRango(t *testing.T) {
	k := analytics.ComputeKPIs(sampleSnapshot())
	for name, v := range map[string]float64{
		"on_time":     k.OnTimeDeliveryRate,
		"stock":       k.StockStatus,
		"fulfillment": k.AvgFulfillmentRate,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
}

func TestKPIs_ToDTO(t *testing.T) {
	d := analytics.ComputeKPIs(sampleSnapshot()).ToDTO()

	require.NotNil(t, d.OnTimeDeliveryRate)
	assert.InDelta(t, 66.67, *d.OnTimeDeliveryRate, 1e-9)
	assert.Equal(t, "4.00", d.TotalOrdersDisplay)
	assert.Equal(t, "1.1M", d.TotalSupplyChainCostDisplay)
}

func TestOnTimeDeliveryRate_SinRetrasoConocido(t *testing.T) {
	rate := analytics.OnTimeDeliveryRate([]entity.Order{{OrderID: "X"}})
	assert.True(t, math.IsNaN(rate))
}

// ── Redondeo sobre el valor binario ───────────────────────────────────────────

func ordersWithDelays(delays ...int) []entity.Order {
	out := make([]entity.Order, len(delays))
	for i, d := range delays {
		out[i] = entity.Order{OrderQuantity: 1, FulfilledQuantity: 1, DelayDays: d, HasDelay: true}
	}
	return out
}

func TestAvgDelayDays_RedondeaValorBinario(t *testing.T) {
	// 601/200 = 3.005 en decimal, pero el float es 3.00499999...
	delays := make([]int, 200)
	for i := range delays {
		delays[i] = 3
	}
	delays[0] = 4
	assert.Equal(t, 3.0, analytics.AvgDelayDays(ordersWithDelays(delays...)))

	// 1/8 = 0.125 exacto: empate al par.
	assert.Equal(t, 0.12, analytics.AvgDelayDays(ordersWithDelays(1, 0, 0, 0, 0, 0, 0, 0)))
}

func TestStockStatus_RedondeaValorBinario(t *testing.T) {
	inventory := make([]entity.InventoryRecord, 20000)
	for i := range inventory {
		inventory[i] = entity.InventoryRecord{StockQuantity: 1, ReorderLevel: 5}
		if i < 9999 {
			inventory[i].StockQuantity = 10
		}
	}
	assert.Equal(t, 49.99, analytics.StockStatus(inventory), "9999/20000*100 queda bajo 49.995")
}
