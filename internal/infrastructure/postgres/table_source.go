package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/repository"
)

var _ repository.TableSource = (*TableSource)(nil)

// TableNames tabla SQL de cada dataset (mismos nombres que los archivos CSV).
var TableNames = map[string]string{
	dataset.TableOrders:         "order_table",
	dataset.TableCosts:          "cost_analysis_trend",
	dataset.TableSuppliers:      "suppliers",
	dataset.TableInventory:      "inventory",
	dataset.TableForecast:       "demand_forecast",
	dataset.TableTransportation: "transportation_data",
}

// TableSource lee cada dataset con un SELECT * y entrega las celdas como texto,
// igual que un CSV, para que la normalización sea idéntica en todas las fuentes.
type TableSource struct {
	pool   *pgxpool.Pool
	schema string
}

// NewTableSource construye la fuente sobre el pool y esquema dados.
func NewTableSource(pool *pgxpool.Pool, schema string) *TableSource {
	if schema == "" {
		schema = "public"
	}
	return &TableSource{pool: pool, schema: schema}
}

// ReadTable implementa repository.TableSource.
func (s *TableSource) ReadTable(ctx context.Context, name string) (*dataset.Table, error) {
	table, ok := TableNames[name]
	if !ok {
		return nil, fmt.Errorf("postgres: %w: %s", domain.ErrUnknownTable, name)
	}

	query := selectQuery(s.schema, table)

	var (
		header []string
		out    [][]string
	)
	err := readOnlyTx(ctx, s.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		fields := rows.FieldDescriptions()
		header = make([]string, len(fields))
		for i, fd := range fields {
			header[i] = fd.Name
		}

		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return fmt.Errorf("valores: %w", err)
			}
			rec := make([]string, len(values))
			for i, v := range values {
				rec[i] = cellString(v)
			}
			out = append(out, rec)
		}
		return rows.Err()
	})
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("postgres: %s.%s: %w", s.schema, table, domain.ErrTableNotFound)
		}
		return nil, fmt.Errorf("postgres.ReadTable(%s): %w", table, err)
	}
	return dataset.NewTable(name, header, out), nil
}

// selectQuery lee la tabla completa en orden físico (ctid): los desempates por orden
// de fila (top-N, conteos por estado, ranking de proveedores) se repiten entre recargas.
func selectQuery(schema, table string) string {
	return "SELECT * FROM " + pgx.Identifier{schema, table}.Sanitize() + " ORDER BY ctid"
}

// cellString convierte un valor decodificado por pgx al texto que esperaría un CSV.
// NULL queda vacío (faltante); las fechas a medianoche se emiten sin hora.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
