package metrics_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/metrics"
)

func snapshotWithReports() *dataset.Snapshot {
	return dataset.NewSnapshot("s1", time.Unix(1_700_000_000, 0), dataset.SnapshotData{
		Reports: []dataset.TableReport{
			{Table: "costs", Rows: 3, Columns: []dataset.ColumnStats{
				{Column: "cost_amount", Kind: dataset.KindNumeric, Present: 2, Filled: 1},
				{Column: "date_recorded", Kind: dataset.KindDate, Present: 1, Missing: 2},
			}},
		},
	})
}

func TestObserveSnapshot(t *testing.T) {
	m := metrics.New()
	m.ObserveSnapshot(snapshotWithReports())

	expected := `
# HELP supply_chain_table_filled_cells Celdas numéricas faltantes o inválidas rellenadas con 0.
# TYPE supply_chain_table_filled_cells gauge
supply_chain_table_filled_cells{table="costs"} 1
# HELP supply_chain_table_missing_dates Fechas no interpretables por tabla.
# TYPE supply_chain_table_missing_dates gauge
supply_chain_table_missing_dates{table="costs"} 2
# HELP supply_chain_table_rows Filas cargadas por tabla en el snapshot vigente.
# TYPE supply_chain_table_rows gauge
supply_chain_table_rows{table="costs"} 3
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"supply_chain_table_rows", "supply_chain_table_filled_cells", "supply_chain_table_missing_dates")
	require.NoError(t, err)
}

func TestObserveReload(t *testing.T) {
	m := metrics.New()
	m.ObserveReload(nil)
	m.ObserveReload(nil)
	m.ObserveReload(errors.New("falla"))

	n, err := testutil.GatherAndCount(m.Registry(), "supply_chain_snapshot_reloads_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por resultado")
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveSnapshot(snapshotWithReports())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "supply_chain_snapshot_loaded_timestamp_seconds")
}
