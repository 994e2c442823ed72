// Package analytics contiene los cálculos puros del tablero de cadena de suministro:
// KPIs escalares y vistas agregadas por dominio (pedidos, proveedores, inventario,
// transporte y costos). Ninguna función muta el snapshot de entrada.
package analytics

import (
	"math"
	"strconv"
	"time"
)

// mean promedio aritmético; NaN si no hay valores (tabla vacía).
func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percent part/total*100; NaN si total es cero.
func percent(part, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return float64(part) / float64(total) * 100
}

// round redondea a `places` decimales sobre el valor binario exacto del float,
// con empates exactos al par (3.005 -> 3.0, 0.125 -> 0.12). NaN e Inf pasan sin cambio.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', int(places), 64), 64)
	if err != nil {
		return v
	}
	return r
}

// formatDate YYYY-MM-DD; cadena vacía para fechas ausentes.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
