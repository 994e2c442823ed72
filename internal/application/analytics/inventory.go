package analytics

import (
	"sort"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

// TopProducts cantidad de productos en los rankings de rotación.
const TopProducts = 10

const dateLayout = "2006-01-02"

// InventoryView agrega la pestaña de inventario y pronóstico.
func InventoryView(inventory []entity.InventoryRecord, forecasts []entity.ForecastRecord) dto.InventoryViewDTO {
	levels := make([]dto.StockLevelDTO, len(inventory))
	for i, r := range inventory {
		levels[i] = dto.StockLevelDTO{
			ProductID:     r.ProductID,
			WarehouseID:   r.WarehouseID,
			StockQuantity: r.StockQuantity,
			ReorderLevel:  r.ReorderLevel,
		}
	}
	return dto.InventoryViewDTO{
		TotalStock:          TotalStock(inventory),
		ReorderAlerts:       ReorderAlerts(inventory),
		AvgForecastAccuracy: dto.Float(AvgForecastAccuracy(forecasts)),
		StockLevels:         levels,
		Warehouses:          WarehouseStock(inventory),
		Forecast:            ForecastSeries(forecasts),
		TopFastMoving:       productDemand(TopFastMoving(inventory, TopProducts)),
		TopSlowMoving:       productDemand(TopSlowMoving(inventory, TopProducts)),
	}
}

// TotalStock suma del stock de todos los registros.
func TotalStock(inventory []entity.InventoryRecord) float64 {
	var total float64
	for _, r := range inventory {
		total += r.StockQuantity
	}
	return total
}

// ReorderAlerts registros con stock igual o inferior al punto de reorden.
func ReorderAlerts(inventory []entity.InventoryRecord) int {
	n := 0
	for _, r := range inventory {
		if r.NeedsReorder() {
			n++
		}
	}
	return n
}

// AvgForecastAccuracy precisión promedio del pronóstico (1 decimal).
func AvgForecastAccuracy(forecasts []entity.ForecastRecord) float64 {
	acc := make([]float64, len(forecasts))
	for i, f := range forecasts {
		acc[i] = f.ForecastAccuracy
	}
	return round(mean(acc), 1)
}

// TopFastMoving los n registros de mayor demanda diaria; empates en orden de entrada.
func TopFastMoving(inventory []entity.InventoryRecord, n int) []entity.InventoryRecord {
	return topBy(inventory, n, func(a, b entity.InventoryRecord) bool {
		return a.AvgDemandPerDay > b.AvgDemandPerDay
	})
}

// TopSlowMoving los n registros de menor demanda diaria; empates en orden de entrada.
func TopSlowMoving(inventory []entity.InventoryRecord, n int) []entity.InventoryRecord {
	return topBy(inventory, n, func(a, b entity.InventoryRecord) bool {
		return a.AvgDemandPerDay < b.AvgDemandPerDay
	})
}

func topBy(inventory []entity.InventoryRecord, n int, less func(a, b entity.InventoryRecord) bool) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, len(inventory))
	copy(out, inventory)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// WarehouseStock resumen de stock por bodega, ordenado por bodega.
func WarehouseStock(inventory []entity.InventoryRecord) []dto.WarehouseStockDTO {
	idx := make(map[string]int)
	var out []dto.WarehouseStockDTO
	for _, r := range inventory {
		i, ok := idx[r.WarehouseID]
		if !ok {
			idx[r.WarehouseID] = len(out)
			out = append(out, dto.WarehouseStockDTO{
				WarehouseID: r.WarehouseID,
				MinStock:    r.StockQuantity,
				MaxStock:    r.StockQuantity,
			})
			i = len(out) - 1
		}
		w := &out[i]
		w.Products++
		w.TotalStock += r.StockQuantity
		w.MinStock = min(w.MinStock, r.StockQuantity)
		w.MaxStock = max(w.MaxStock, r.StockQuantity)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out
}

// ForecastSeries demanda pronosticada vs real en orden cronológico.
// Las filas sin fecha válida van al final en su orden original.
func ForecastSeries(forecasts []entity.ForecastRecord) []dto.ForecastPointDTO {
	sorted := make([]entity.ForecastRecord, len(forecasts))
	copy(sorted, forecasts)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ForecastDate, sorted[j].ForecastDate
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})
	out := make([]dto.ForecastPointDTO, len(sorted))
	for i, f := range sorted {
		out[i] = dto.ForecastPointDTO{
			Date:            formatDate(f.ForecastDate),
			PredictedDemand: f.PredictedDemand,
			ActualDemand:    f.ActualDemand,
		}
	}
	return out
}

func productDemand(records []entity.InventoryRecord) []dto.ProductDemandDTO {
	out := make([]dto.ProductDemandDTO, len(records))
	for i, r := range records {
		out[i] = dto.ProductDemandDTO{ProductID: r.ProductID, AvgDemandPerDay: r.AvgDemandPerDay}
	}
	return out
}
