package dataset

import (
	"fmt"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
)

// Schema declara qué columnas necesita cada tabla y cómo se tipan.
//
//   - Required: su ausencia aborta la carga (MissingColumnError).
//   - Numeric / Dates: columnas que se convierten; pueden ser opcionales.
//   - Las columnas que no están en Numeric ni Dates se conservan como texto.
type Schema struct {
	Table    string
	Required []string
	Numeric  []string
	Dates    []string
}

var schemas = map[string]Schema{
	TableOrders: {
		Table: TableOrders,
		Required: []string{
			"order_date", "promised_delivery_date", "actual_delivery_date",
			"order_quantity", "fulfilled_quantity", "order_status",
		},
		// delay_days se coerciona si viene, pero siempre se recalcula desde las fechas.
		Numeric: []string{"delay_days", "fulfilled_quantity", "order_quantity", "latitude", "longitude"},
		Dates:   []string{"order_date", "promised_delivery_date", "actual_delivery_date"},
	},
	TableCosts: {
		Table:    TableCosts,
		Required: []string{"category", "cost_amount", "date_recorded"},
		Numeric:  []string{"cost_amount"},
		Dates:    []string{"date_recorded"},
	},
	TableSuppliers: {
		Table: TableSuppliers,
		Required: []string{
			"supplier_name", "on_time_delivery_rate", "quality_rating",
			"lead_time_days", "defect_rate",
		},
		Numeric: []string{"on_time_delivery_rate", "quality_rating", "lead_time_days", "defect_rate"},
	},
	TableInventory: {
		Table: TableInventory,
		Required: []string{
			"product_id", "warehouse_id", "stock_quantity", "reorder_level", "avg_demand_per_day",
		},
		Numeric: []string{"stock_quantity", "reorder_level", "avg_demand_per_day"},
	},
	TableForecast: {
		Table:    TableForecast,
		Required: []string{"forecast_date", "predicted_demand", "actual_demand", "forecast_accuracy"},
		Numeric:  []string{"predicted_demand", "actual_demand", "forecast_accuracy"},
		Dates:    []string{"forecast_date"},
	},
	TableTransportation: {
		Table: TableTransportation,
		Required: []string{
			"carrier_name", "shipment_status", "estimated_transit_time", "actual_transit_time",
			"origin_location", "destination_location", "origin_lat", "origin_lon", "mode_of_transport",
		},
		Numeric: []string{
			"estimated_transit_time", "actual_transit_time",
			"origin_lat", "origin_lon", "destination_lat", "destination_lon",
		},
	},
}

// SchemaFor devuelve el esquema de una tabla conocida.
func SchemaFor(table string) (Schema, error) {
	s, ok := schemas[table]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	return s, nil
}

// MissingColumnError error estructural: falta una columna requerida.
// Envuelve domain.ErrMissingColumn para poder usar errors.Is.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("tabla %q: falta la columna requerida %q", e.Table, e.Column)
}

func (e *MissingColumnError) Unwrap() error { return domain.ErrMissingColumn }

// Validate verifica que la tabla traiga todas las columnas requeridas.
func (s Schema) Validate(t *Table) error {
	for _, col := range s.Required {
		if !t.HasColumn(col) {
			return &MissingColumnError{Table: s.Table, Column: col}
		}
	}
	return nil
}
