// Package xlsx lee las tablas del tablero desde un libro de Excel, una hoja por tabla.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
)

// Source implementa repository.TableSource sobre un archivo .xlsx.
// El libro se abre en cada lectura para que una recarga vea los cambios del archivo.
type Source struct {
	path string
}

// New crea la fuente sobre el libro indicado.
func New(path string) *Source {
	return &Source{path: path}
}

// ReadTable busca la hoja cuyo nombre coincide con la tabla (sin distinguir
// mayúsculas ni espacios). La primera fila es el encabezado.
func (s *Source) ReadTable(ctx context.Context, name string) (*dataset.Table, error) {
	schema, err := dataset.SchemaFor(name)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("xlsx: %s: %w", s.path, domain.ErrTableNotFound)
		}
		return nil, fmt.Errorf("xlsx: abrir %s: %w", s.path, err)
	}
	defer f.Close()

	sheet, ok := findSheet(f.GetSheetList(), name)
	if !ok {
		return nil, fmt.Errorf("xlsx: hoja %q: %w", name, domain.ErrTableNotFound)
	}

	// Valores crudos: el texto formateado depende del estilo de la celda
	// ("01-15-24", "1,200") y la normalización no lo reconoce.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return dataset.NewTable(name, nil, nil), nil
	}
	// GetRows recorta celdas vacías al final de la fila; Table.Cell las devuelve como "".
	t := dataset.NewTable(name, rows[0], rows[1:])
	convertDateSerials(t, schema.Dates, uses1904(f))
	return t, nil
}

// convertDateSerials reemplaza los seriales de Excel de las columnas de fecha
// por texto ISO. Las celdas que ya son texto quedan igual.
func convertDateSerials(t *dataset.Table, dateColumns []string, date1904 bool) {
	for _, col := range dateColumns {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		for _, row := range t.Rows {
			if idx >= len(row) {
				continue
			}
			serial, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				continue
			}
			d, err := excelize.ExcelDateToTime(serial, date1904)
			if err != nil {
				continue
			}
			row[idx] = formatExcelDate(d)
		}
	}
}

func formatExcelDate(d time.Time) string {
	if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 {
		return d.Format("2006-01-02")
	}
	return d.Format("2006-01-02 15:04:05")
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	return err == nil && props.Date1904 != nil && *props.Date1904
}

func findSheet(sheets []string, table string) (string, bool) {
	for _, sh := range sheets {
		if strings.EqualFold(strings.TrimSpace(sh), table) {
			return sh, true
		}
	}
	return "", false
}

// WriteWorkbook exporta tablas crudas a un libro nuevo, una hoja por tabla.
// Lo usan el CLI de reportes y las pruebas para generar libros de entrada.
func WriteWorkbook(path string, tables []*dataset.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(first, t.Name); err != nil {
				return fmt.Errorf("xlsx: renombrar hoja: %w", err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("xlsx: crear hoja %q: %w", t.Name, err)
		}
		if err := writeRow(f, t.Name, 1, t.Header); err != nil {
			return err
		}
		for r, row := range t.Rows {
			if err := writeRow(f, t.Name, r+2, row); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: guardar %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("xlsx: escribir fila %d de %q: %w", row, sheet, err)
	}
	return nil
}
