// Package csvsource lee las tablas del tablero desde archivos CSV en un directorio.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
)

// FileNames archivo de cada tabla dentro del directorio de datos.
var FileNames = map[string]string{
	dataset.TableOrders:         "order_table.csv",
	dataset.TableCosts:          "Cost Analysis Trend.csv",
	dataset.TableSuppliers:      "suppliers.csv",
	dataset.TableInventory:      "inventory.csv",
	dataset.TableForecast:       "demand_forecast.csv",
	dataset.TableTransportation: "transportation_data.csv",
}

// Source implementa repository.TableSource sobre un directorio de CSV.
type Source struct {
	dir     string
	decoder *encoding.Decoder // nil = UTF-8
}

// New crea la fuente. charset acepta utf-8, latin1/iso-8859-1 o windows-1252.
func New(dir, charset string) (*Source, error) {
	s := &Source{dir: dir}
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1":
		s.decoder = charmap.ISO8859_1.NewDecoder()
	case "windows-1252":
		s.decoder = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("csvsource: charset %q no soportado", charset)
	}
	return s, nil
}

// ReadTable lee el CSV de la tabla. Filas cortas o largas se aceptan tal cual;
// la normalización trata las celdas faltantes como vacías.
func (s *Source) ReadTable(ctx context.Context, name string) (*dataset.Table, error) {
	file, ok := FileNames[name]
	if !ok {
		return nil, fmt.Errorf("csvsource: %w: %s", domain.ErrUnknownTable, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, file)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("csvsource: %s: %w", path, domain.ErrTableNotFound)
		}
		return nil, fmt.Errorf("csvsource: abrir %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if s.decoder != nil {
		r = transform.NewReader(f, s.decoder)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return dataset.NewTable(name, nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("csvsource: encabezado de %s: %w", path, err)
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvsource: leer %s: %w", path, err)
		}
		rows = append(rows, rec)
	}
	return dataset.NewTable(name, header, rows), nil
}
