package analytics

import (
	"fmt"
	"sort"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/numfmt"
)

// CarrierStats tiempo de tránsito real promedio de un transportista.
type CarrierStats struct {
	CarrierName    string
	Shipments      int
	AvgTransitTime float64
}

// TransportationView agrega la pestaña de transporte.
func TransportationView(shipments []entity.ShipmentRecord) dto.TransportationViewDTO {
	carriers := CarrierPerformance(shipments)
	best, worst := BestWorstCarrier(carriers)

	perf := make([]dto.CarrierPerformanceDTO, len(carriers))
	for i, c := range carriers {
		perf[i] = dto.CarrierPerformanceDTO{
			CarrierName:    c.CarrierName,
			Shipments:      c.Shipments,
			AvgTransitTime: c.AvgTransitTime,
		}
	}
	statuses := make([]string, len(shipments))
	routes := make([]dto.RoutePointDTO, len(shipments))
	for i, s := range shipments {
		statuses[i] = s.Status
		routes[i] = dto.RoutePointDTO{
			OriginLocation:      s.OriginLocation,
			DestinationLocation: s.DestinationLocation,
			OriginLat:           s.OriginLat,
			OriginLon:           s.OriginLon,
			DestinationLat:      s.DestinationLat,
			DestinationLon:      s.DestinationLon,
			ModeOfTransport:     s.ModeOfTransport,
			Status:              s.Status,
			ActualTransitTime:   s.ActualTransitTime,
		}
	}

	return dto.TransportationViewDTO{
		TotalShipments:     len(shipments),
		DelayedPercentage:  dto.Float(DelayedPercentage(shipments)),
		AvgTransitTime:     dto.Float(AvgTransitTime(shipments)),
		BestCarrier:        best,
		WorstCarrier:       worst,
		Carriers:           perf,
		StatusDistribution: countByKey(statuses),
		Routes:             routes,
		Insights:           TransportInsights(shipments),
	}
}

// DelayedPercentage porcentaje de envíos con estado "Delayed" (2 decimales).
func DelayedPercentage(shipments []entity.ShipmentRecord) float64 {
	delayed := 0
	for _, s := range shipments {
		if s.IsDelayed() {
			delayed++
		}
	}
	return round(percent(delayed, len(shipments)), 2)
}

// AvgTransitTime tiempo de tránsito real promedio (1 decimal).
func AvgTransitTime(shipments []entity.ShipmentRecord) float64 {
	times := make([]float64, len(shipments))
	for i, s := range shipments {
		times[i] = s.ActualTransitTime
	}
	return round(mean(times), 1)
}

// CarrierPerformance tránsito real promedio por transportista, ordenado por nombre.
func CarrierPerformance(shipments []entity.ShipmentRecord) []CarrierStats {
	groups := make(map[string][]float64)
	for _, s := range shipments {
		groups[s.CarrierName] = append(groups[s.CarrierName], s.ActualTransitTime)
	}
	out := make([]CarrierStats, 0, len(groups))
	for name, times := range groups {
		out = append(out, CarrierStats{CarrierName: name, Shipments: len(times), AvgTransitTime: mean(times)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CarrierName < out[j].CarrierName })
	return out
}

// BestWorstCarrier transportista con menor y mayor tránsito promedio.
// En empate gana el primero en orden de nombre. Sin datos devuelve cadenas vacías.
func BestWorstCarrier(carriers []CarrierStats) (best, worst string) {
	if len(carriers) == 0 {
		return "", ""
	}
	lo, hi := carriers[0], carriers[0]
	for _, c := range carriers[1:] {
		if c.AvgTransitTime < lo.AvgTransitTime {
			lo = c
		}
		if c.AvgTransitTime > hi.AvgTransitTime {
			hi = c
		}
	}
	return lo.CarrierName, hi.CarrierName
}

// TransportInsights las cinco líneas de resumen de transporte.
func TransportInsights(shipments []entity.ShipmentRecord) []string {
	best, worst := BestWorstCarrier(CarrierPerformance(shipments))
	if best == "" {
		best, worst = "n/a", "n/a"
	}
	return []string{
		fmt.Sprintf("Total Shipments: %d", len(shipments)),
		fmt.Sprintf("Delayed Shipments: %s%% of total shipments", numfmt.Plain(DelayedPercentage(shipments))),
		fmt.Sprintf("Average Transit Time: %s days", numfmt.Plain(AvgTransitTime(shipments))),
		fmt.Sprintf("Best Performing Carrier: %s (Fastest transit time)", best),
		fmt.Sprintf("Worst Performing Carrier: %s (Slowest transit time)", worst),
	}
}
