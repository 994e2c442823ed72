package dataset

import (
	"slices"
	"time"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

// Snapshot copia inmutable y normalizada de las seis tablas de un ciclo de carga.
// Los getters devuelven copias: ningún consumidor puede alterar el snapshot publicado.
type Snapshot struct {
	id       string
	loadedAt time.Time

	orders    []entity.Order
	costs     []entity.CostEntry
	suppliers []entity.Supplier
	inventory []entity.InventoryRecord
	forecasts []entity.ForecastRecord
	shipments []entity.ShipmentRecord

	reports []TableReport
}

// SnapshotData contenido con el que se construye un Snapshot.
type SnapshotData struct {
	Orders    []entity.Order
	Costs     []entity.CostEntry
	Suppliers []entity.Supplier
	Inventory []entity.InventoryRecord
	Forecasts []entity.ForecastRecord
	Shipments []entity.ShipmentRecord
	Reports   []TableReport
}

// NewSnapshot construye el snapshot copiando los datos recibidos.
func NewSnapshot(id string, loadedAt time.Time, data SnapshotData) *Snapshot {
	reports := make([]TableReport, len(data.Reports))
	for i, r := range data.Reports {
		r.Columns = slices.Clone(r.Columns)
		reports[i] = r
	}
	return &Snapshot{
		id:        id,
		loadedAt:  loadedAt,
		orders:    slices.Clone(data.Orders),
		costs:     slices.Clone(data.Costs),
		suppliers: slices.Clone(data.Suppliers),
		inventory: slices.Clone(data.Inventory),
		forecasts: slices.Clone(data.Forecasts),
		shipments: slices.Clone(data.Shipments),
		reports:   reports,
	}
}

// ID identificador del ciclo de carga.
func (s *Snapshot) ID() string { return s.id }

// LoadedAt momento de la carga.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

func (s *Snapshot) Orders() []entity.Order              { return slices.Clone(s.orders) }
func (s *Snapshot) Costs() []entity.CostEntry           { return slices.Clone(s.costs) }
func (s *Snapshot) Suppliers() []entity.Supplier        { return slices.Clone(s.suppliers) }
func (s *Snapshot) Inventory() []entity.InventoryRecord { return slices.Clone(s.inventory) }
func (s *Snapshot) Forecasts() []entity.ForecastRecord  { return slices.Clone(s.forecasts) }
func (s *Snapshot) Shipments() []entity.ShipmentRecord  { return slices.Clone(s.shipments) }

// Reports reporte de normalización por tabla, en orden de carga.
func (s *Snapshot) Reports() []TableReport {
	out := make([]TableReport, len(s.reports))
	for i, r := range s.reports {
		r.Columns = slices.Clone(r.Columns)
		out[i] = r
	}
	return out
}
