// Package dataset modela las tablas crudas de entrada, su normalización
// (coerción numérica y de fechas con relleno en cero) y el Snapshot inmutable
// que consumen los cálculos de KPIs, insights y vistas agregadas.
package dataset

import "strings"

// Nombres lógicos de las seis tablas de entrada.
const (
	TableOrders         = "orders"
	TableCosts          = "costs"
	TableSuppliers      = "suppliers"
	TableInventory      = "inventory"
	TableForecast       = "forecast"
	TableTransportation = "transportation"
)

// TableNames devuelve las tablas en el orden en que se cargan.
func TableNames() []string {
	return []string{
		TableOrders,
		TableCosts,
		TableSuppliers,
		TableInventory,
		TableForecast,
		TableTransportation,
	}
}

// Table es una tabla cruda fila/columna, independiente del formato de origen (CSV, XLSX, SQL).
// Todas las celdas llegan como texto; la normalización decide el tipo.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// NewTable construye una tabla limpiando los nombres de columna
// (espacios y BOM UTF-8 que dejan las exportaciones de Excel).
func NewTable(name string, header []string, rows [][]string) *Table {
	clean := make([]string, len(header))
	for i, h := range header {
		clean[i] = cleanHeader(h)
	}
	return &Table{Name: name, Header: clean, Rows: rows}
}

// ColumnIndex devuelve la posición de la columna o -1 si no existe.
func (t *Table) ColumnIndex(column string) int {
	for i, h := range t.Header {
		if h == column {
			return i
		}
	}
	return -1
}

// HasColumn indica si la tabla trae la columna.
func (t *Table) HasColumn(column string) bool {
	return t.ColumnIndex(column) >= 0
}

// Cell devuelve la celda (fila, columna); filas cortas se leen como celda vacía.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.TrimSpace(h)
}
