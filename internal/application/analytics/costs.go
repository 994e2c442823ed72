package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/numfmt"
)

// CostsView agrega la pestaña de costos.
func CostsView(costs []entity.CostEntry, suppliers []entity.Supplier) dto.CostsViewDTO {
	return dto.CostsViewDTO{
		Breakdown:           CostBreakdown(costs),
		Trend:               CostTrend(costs),
		SupplierDefectRates: DefectRateBySupplier(suppliers),
	}
}

// CostBreakdown suma de costos por categoría, ordenado por categoría.
// Formatted usa el formato compacto (K/M) y FullValue el monto con separadores.
func CostBreakdown(costs []entity.CostEntry) []dto.CostBreakdownDTO {
	sums := make(map[string]decimal.Decimal)
	for _, c := range costs {
		sums[c.Category] = sums[c.Category].Add(c.Amount)
	}
	out := make([]dto.CostBreakdownDTO, 0, len(sums))
	for cat, amount := range sums {
		out = append(out, dto.CostBreakdownDTO{
			Category:  cat,
			Amount:    amount,
			Formatted: numfmt.CompactDecimal(amount),
			FullValue: numfmt.Currency(amount),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// CostTrend costos en orden cronológico; filas sin fecha válida al final.
func CostTrend(costs []entity.CostEntry) []dto.CostTrendPointDTO {
	sorted := make([]entity.CostEntry, len(costs))
	copy(sorted, costs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].DateRecorded, sorted[j].DateRecorded
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})
	out := make([]dto.CostTrendPointDTO, len(sorted))
	for i, c := range sorted {
		out[i] = dto.CostTrendPointDTO{
			Date:     formatDate(c.DateRecorded),
			Category: c.Category,
			Amount:   c.Amount,
		}
	}
	return out
}
