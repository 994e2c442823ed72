// Package metrics expone en formato Prometheus el estado de las cargas de datos:
// filas y celdas rellenadas por tabla, fecha del snapshot vigente y recargas.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
)

const namespace = "supply_chain"

// Metrics colectores propios sobre un registro aislado (no el global).
type Metrics struct {
	registry     *prometheus.Registry
	rows         *prometheus.GaugeVec
	filledCells  *prometheus.GaugeVec
	missingDates *prometheus.GaugeVec
	loadedAt     prometheus.Gauge
	reloads      *prometheus.CounterVec
}

// New registra los colectores, incluidos los de runtime de Go y del proceso.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "table_rows",
			Help:      "Filas cargadas por tabla en el snapshot vigente.",
		}, []string{"table"}),
		filledCells: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "table_filled_cells",
			Help:      "Celdas numéricas faltantes o inválidas rellenadas con 0.",
		}, []string{"table"}),
		missingDates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "table_missing_dates",
			Help:      "Fechas no interpretables por tabla.",
		}, []string{"table"}),
		loadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_loaded_timestamp_seconds",
			Help:      "Momento de carga del snapshot vigente (unix).",
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_reloads_total",
			Help:      "Recargas de datos por resultado.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.rows, m.filledCells, m.missingDates, m.loadedAt, m.reloads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSnapshot actualiza los gauges con el reporte de normalización del snapshot.
func (m *Metrics) ObserveSnapshot(snap *dataset.Snapshot) {
	for _, r := range snap.Reports() {
		m.rows.WithLabelValues(r.Table).Set(float64(r.Rows))
		m.filledCells.WithLabelValues(r.Table).Set(float64(r.FilledCells()))
		m.missingDates.WithLabelValues(r.Table).Set(float64(r.MissingDates()))
	}
	m.loadedAt.Set(float64(snap.LoadedAt().Unix()))
}

// ObserveReload cuenta una recarga exitosa o fallida.
func (m *Metrics) ObserveReload(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

// Registry devuelve el registro subyacente.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve /metrics para este registro.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
