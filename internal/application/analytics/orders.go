package analytics

import (
	"sort"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

const (
	labelOnTime  = "On-Time"
	labelDelayed = "Delayed"
	monthLayout  = "2006-01"
)

// OrdersView agrega la pestaña de pedidos.
func OrdersView(orders []entity.Order) dto.OrdersViewDTO {
	return dto.OrdersViewDTO{
		StatusCounts:        StatusCounts(orders),
		DeliveryPerformance: DeliveryPerformance(orders),
		DelayDistribution:   DelayDistribution(orders),
		MonthlyOrders:       MonthlyOrders(orders),
		GeoPoints:           GeoPoints(orders),
	}
}

// StatusCounts pedidos por estado, de mayor a menor.
// Los empates conservan el orden de primera aparición.
func StatusCounts(orders []entity.Order) []dto.CountDTO {
	keys := make([]string, len(orders))
	for i, o := range orders {
		keys[i] = o.Status
	}
	return countByFrequency(keys)
}

// DeliveryPerformance pedidos a tiempo vs retrasados.
// Los pedidos con retraso desconocido no entran en ninguno de los dos.
func DeliveryPerformance(orders []entity.Order) []dto.CountDTO {
	onTime, delayed := 0, 0
	for _, o := range orders {
		switch {
		case o.IsOnTime():
			onTime++
		case o.IsDelayed():
			delayed++
		}
	}
	return []dto.CountDTO{
		{Label: labelOnTime, Count: onTime},
		{Label: labelDelayed, Count: delayed},
	}
}

// DelayDistribution histograma de días de retraso para los pedidos retrasados.
func DelayDistribution(orders []entity.Order) []dto.DelayBucketDTO {
	counts := make(map[int]int)
	for _, o := range orders {
		if o.IsDelayed() {
			counts[o.DelayDays]++
		}
	}
	out := make([]dto.DelayBucketDTO, 0, len(counts))
	for d, n := range counts {
		out = append(out, dto.DelayBucketDTO{DelayDays: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DelayDays < out[j].DelayDays })
	return out
}

// MonthlyOrders pedidos por mes calendario (YYYY-MM) en orden cronológico.
// Pedidos sin fecha válida se omiten.
func MonthlyOrders(orders []entity.Order) []dto.CountDTO {
	counts := make(map[string]int)
	for _, o := range orders {
		if o.OrderDate.IsZero() {
			continue
		}
		counts[o.OrderDate.Format(monthLayout)]++
	}
	out := make([]dto.CountDTO, 0, len(counts))
	for m, n := range counts {
		out = append(out, dto.CountDTO{Label: m, Count: n})
	}
	// YYYY-MM ordena lexicográficamente igual que cronológicamente.
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// GeoPoints pedidos ubicables con retraso conocido; nil si la tabla no trae coordenadas.
func GeoPoints(orders []entity.Order) []dto.GeoPointDTO {
	var out []dto.GeoPointDTO
	for _, o := range orders {
		if !o.HasLocation || !o.HasDelay {
			continue
		}
		out = append(out, dto.GeoPointDTO{
			OrderID:   o.OrderID,
			Latitude:  o.Latitude,
			Longitude: o.Longitude,
			DelayDays: o.DelayDays,
		})
	}
	return out
}

// countByFrequency cuenta ocurrencias y ordena de mayor a menor (estable).
func countByFrequency(keys []string) []dto.CountDTO {
	idx := make(map[string]int)
	out := make([]dto.CountDTO, 0)
	for _, k := range keys {
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, dto.CountDTO{Label: k, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// countByKey cuenta ocurrencias y ordena por clave.
func countByKey(keys []string) []dto.CountDTO {
	counts := make(map[string]int)
	for _, k := range keys {
		counts[k]++
	}
	out := make([]dto.CountDTO, 0, len(counts))
	for k, n := range counts {
		out = append(out, dto.CountDTO{Label: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
