package dataset

// Tipos de columna reportados.
const (
	KindNumeric = "numeric"
	KindDate    = "date"
)

// ColumnStats conteo de celdas presentes y faltantes de una columna tipada.
// Para columnas numéricas los faltantes se rellenan con 0 (Filled);
// para fechas se propagan como ausentes (Missing).
type ColumnStats struct {
	Column  string `json:"column"`
	Kind    string `json:"kind"`
	Present int    `json:"present"`
	Filled  int    `json:"filled"`
	Missing int    `json:"missing"`
}

// TableReport resultado de normalizar una tabla.
type TableReport struct {
	Table   string        `json:"table"`
	Rows    int           `json:"rows"`
	Columns []ColumnStats `json:"columns"`
}

// FilledCells total de celdas numéricas rellenadas con 0.
func (r TableReport) FilledCells() int {
	n := 0
	for _, c := range r.Columns {
		n += c.Filled
	}
	return n
}

// MissingDates total de fechas ausentes o no interpretables.
func (r TableReport) MissingDates() int {
	n := 0
	for _, c := range r.Columns {
		n += c.Missing
	}
	return n
}
