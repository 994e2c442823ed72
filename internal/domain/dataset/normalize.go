package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts formatos aceptados para columnas de fecha, en orden de prueba.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"02-Jan-2006",
	"2006-01",
}

// Frame es una tabla normalizada: columnas numéricas como float64 (sin NaN),
// fechas como time.Time (cero = ausente) y el resto como texto.
// No expone mutadores; se construye solo con Normalize.
type Frame struct {
	name    string
	rows    int
	numeric map[string][]float64
	dates   map[string][]time.Time
	text    map[string][]string
}

// Normalize aplica la política de carga a una tabla cruda:
//
//  1. Valida las columnas requeridas (error fatal MissingColumnError).
//  2. Convierte columnas numéricas; lo no interpretable queda como faltante.
//  3. Rellena con 0 todo faltante numérico (política explícita, se cuenta en el reporte).
//  4. Interpreta fechas por separado; las inválidas quedan ausentes (sin relleno).
//
// Una celda malformada nunca interrumpe la carga.
func Normalize(t *Table, s Schema) (*Frame, TableReport, error) {
	report := TableReport{Table: s.Table, Rows: len(t.Rows)}
	if err := s.Validate(t); err != nil {
		return nil, report, err
	}

	f := &Frame{
		name:    s.Table,
		rows:    len(t.Rows),
		numeric: make(map[string][]float64, len(s.Numeric)),
		dates:   make(map[string][]time.Time, len(s.Dates)),
		text:    make(map[string][]string, len(t.Header)),
	}

	typed := make(map[string]bool, len(s.Numeric)+len(s.Dates))

	for _, col := range s.Numeric {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		typed[col] = true
		values := make([]float64, f.rows)
		stats := ColumnStats{Column: col, Kind: KindNumeric}
		for i := range t.Rows {
			v, ok := ParseNumber(t.Cell(i, idx))
			if !ok {
				// faltante -> 0
				stats.Filled++
				continue
			}
			values[i] = v
			stats.Present++
		}
		f.numeric[col] = values
		report.Columns = append(report.Columns, stats)
	}

	for _, col := range s.Dates {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		typed[col] = true
		values := make([]time.Time, f.rows)
		stats := ColumnStats{Column: col, Kind: KindDate}
		for i := range t.Rows {
			d, ok := ParseDate(t.Cell(i, idx))
			if !ok {
				stats.Missing++
				continue
			}
			values[i] = d
			stats.Present++
		}
		f.dates[col] = values
		report.Columns = append(report.Columns, stats)
	}

	for idx, col := range t.Header {
		if typed[col] || col == "" {
			continue
		}
		if _, dup := f.text[col]; dup {
			continue
		}
		values := make([]string, f.rows)
		for i := range t.Rows {
			values[i] = t.Cell(i, idx)
		}
		f.text[col] = values
	}

	return f, report, nil
}

// ParseNumber interpreta una celda numérica. Vacíos, texto y valores no finitos
// (NaN, Inf) se consideran faltantes.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseDate interpreta una celda de fecha con los formatos soportados.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// Name nombre lógico de la tabla.
func (f *Frame) Name() string { return f.name }

// Len número de filas.
func (f *Frame) Len() int { return f.rows }

// Has indica si la columna existe (en cualquier tipo).
func (f *Frame) Has(col string) bool {
	if _, ok := f.numeric[col]; ok {
		return true
	}
	if _, ok := f.dates[col]; ok {
		return true
	}
	_, ok := f.text[col]
	return ok
}

// Float valor numérico normalizado; columnas ausentes leen 0.
func (f *Frame) Float(col string, row int) float64 {
	if v, ok := f.numeric[col]; ok {
		return v[row]
	}
	return 0
}

// Date fecha normalizada; cero si está ausente.
func (f *Frame) Date(col string, row int) time.Time {
	if v, ok := f.dates[col]; ok {
		return v[row]
	}
	return time.Time{}
}

// Text valor textual tal como vino en la fuente.
func (f *Frame) Text(col string, row int) string {
	if v, ok := f.text[col]; ok {
		return v[row]
	}
	return ""
}
