package dataset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

func TestSnapshot_GettersDevuelvenCopias(t *testing.T) {
	suppliers := []entity.Supplier{{Name: "Acme", LeadTimeDays: 2}}
	reports := []dataset.TableReport{{Table: "suppliers", Rows: 1, Columns: []dataset.ColumnStats{{Column: "defect_rate", Filled: 1}}}}
	snap := dataset.NewSnapshot("id-1", time.Unix(0, 0), dataset.SnapshotData{Suppliers: suppliers, Reports: reports})

	// mutar la entrada no afecta el snapshot
	suppliers[0].Name = "Mutado"
	reports[0].Columns[0].Filled = 99

	got := snap.Suppliers()
	assert.Equal(t, "Acme", got[0].Name)

	// mutar la salida tampoco
	got[0].Name = "Otro"
	assert.Equal(t, "Acme", snap.Suppliers()[0].Name)

	r := snap.Reports()
	assert.Equal(t, 1, r[0].Columns[0].Filled)
	r[0].Columns[0].Filled = 7
	assert.Equal(t, 1, snap.Reports()[0].Columns[0].Filled)

	assert.Equal(t, "id-1", snap.ID())
	assert.Empty(t, snap.Orders())
}
