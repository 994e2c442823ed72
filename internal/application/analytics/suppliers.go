package analytics

import (
	"sort"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

// SuppliersView agrega la pestaña de proveedores.
func SuppliersView(suppliers []entity.Supplier) dto.SuppliersViewDTO {
	scatter := make([]dto.SupplierRowDTO, len(suppliers))
	leadTimes := make([]dto.SupplierMetricDTO, len(suppliers))
	for i, s := range suppliers {
		scatter[i] = supplierRow(s)
		leadTimes[i] = dto.SupplierMetricDTO{SupplierName: s.Name, Value: s.LeadTimeDays}
	}
	ranked := RankSuppliers(suppliers)
	ranking := make([]dto.SupplierRowDTO, len(ranked))
	for i, s := range ranked {
		ranking[i] = supplierRow(s)
	}
	return dto.SuppliersViewDTO{
		Ranking:         ranking,
		LeadTimes:       leadTimes,
		QualityVsOnTime: scatter,
		DefectRates:     DefectRateBySupplier(suppliers),
	}
}

// RankSuppliers ordena por lead time ascendente y luego tasa de defectos ascendente.
// El orden es estable: empates completos conservan el orden de entrada.
func RankSuppliers(suppliers []entity.Supplier) []entity.Supplier {
	out := make([]entity.Supplier, len(suppliers))
	copy(out, suppliers)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LeadTimeDays != out[j].LeadTimeDays {
			return out[i].LeadTimeDays < out[j].LeadTimeDays
		}
		return out[i].DefectRate < out[j].DefectRate
	})
	return out
}

// DefectRateBySupplier tasa de defectos promedio por proveedor, ordenado por nombre.
func DefectRateBySupplier(suppliers []entity.Supplier) []dto.SupplierMetricDTO {
	groups := make(map[string][]float64)
	for _, s := range suppliers {
		groups[s.Name] = append(groups[s.Name], s.DefectRate)
	}
	out := make([]dto.SupplierMetricDTO, 0, len(groups))
	for name, rates := range groups {
		out = append(out, dto.SupplierMetricDTO{SupplierName: name, Value: mean(rates)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SupplierName < out[j].SupplierName })
	return out
}

func supplierRow(s entity.Supplier) dto.SupplierRowDTO {
	return dto.SupplierRowDTO{
		SupplierName:       s.Name,
		OnTimeDeliveryRate: s.OnTimeDeliveryRate,
		QualityRating:      s.QualityRating,
		LeadTimeDays:       s.LeadTimeDays,
		DefectRate:         s.DefectRate,
	}
}
