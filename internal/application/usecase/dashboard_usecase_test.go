package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/usecase"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeStore struct {
	snap      *dataset.Snapshot
	next      *dataset.Snapshot
	reloadErr error
}

func (f *fakeStore) Current() (*dataset.Snapshot, error) {
	if f.snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	return f.snap, nil
}

func (f *fakeStore) Reload(context.Context) (*dataset.Snapshot, error) {
	if f.reloadErr != nil {
		return nil, f.reloadErr
	}
	f.snap = f.next
	return f.snap, nil
}

type fakePDF struct {
	got dto.ExecutiveSummaryDTO
}

func (f *fakePDF) GenerateSummaryPDF(_ context.Context, s dto.ExecutiveSummaryDTO) ([]byte, error) {
	f.got = s
	return []byte("%PDF-fake"), nil
}

type fakeRecorder struct{ results []error }

func (f *fakeRecorder) ObserveReload(err error) { f.results = append(f.results, err) }

func testSnapshot(id string) *dataset.Snapshot {
	return dataset.NewSnapshot(id, time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC), dataset.SnapshotData{
		Orders: []entity.Order{
			{OrderID: "O1", Status: "Delivered", OrderQuantity: 10, FulfilledQuantity: 10, DelayDays: 0, HasDelay: true},
			{OrderID: "O2", Status: "Delivered", OrderQuantity: 10, FulfilledQuantity: 5, DelayDays: 6, HasDelay: true},
		},
		Costs: []entity.CostEntry{
			{Category: "Logistics", Amount: decimal.NewFromInt(1_200_000)},
		},
		Suppliers: []entity.Supplier{{Name: "Acme", OnTimeDeliveryRate: 90, QualityRating: 90, LeadTimeDays: 3}},
		Inventory: []entity.InventoryRecord{{ProductID: "P1", WarehouseID: "W1", StockQuantity: 5, ReorderLevel: 10}},
		Shipments: []entity.ShipmentRecord{{CarrierName: "A", Status: "Delayed", ActualTransitTime: 2}},
		Reports: []dataset.TableReport{
			{Table: "orders", Rows: 2, Columns: []dataset.ColumnStats{{Column: "order_date", Kind: dataset.KindDate, Present: 1, Missing: 1}}},
		},
	})
}

// ── DashboardUseCase ──────────────────────────────────────────────────────────

func TestGetSummary(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeStore{snap: testSnapshot("s1")}, nil)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "s1", got.SnapshotID)
	assert.Equal(t, "2024-02-01T08:00:00Z", got.LoadedAt)
	assert.Equal(t, 2, got.KPIs.TotalOrders)
	require.NotNil(t, got.KPIs.OnTimeDeliveryRate)
	assert.Equal(t, 50.0, *got.KPIs.OnTimeDeliveryRate)
	require.Len(t, got.Insights, 6)
	assert.Equal(t, "warning", got.Insights[3].Severity, "costo > 1M")
	require.Len(t, got.CostBreakdown, 1)
	assert.Equal(t, "1.2M", got.CostBreakdown[0].Formatted)
}

func TestGetSummary_SinSnapshot(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeStore{}, nil)
	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotUnavailable)

	_, err = uc.GetOrders(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotUnavailable)
}

func TestGetSummaryPDF(t *testing.T) {
	gen := &fakePDF{}
	uc := usecase.NewDashboardUseCase(&fakeStore{snap: testSnapshot("s1")}, gen)

	out, err := uc.GetSummaryPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "s1", gen.got.SnapshotID)
}

func TestGetSummaryPDF_SinGenerador(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeStore{snap: testSnapshot("s1")}, nil)
	_, err := uc.GetSummaryPDF(context.Background())
	assert.Error(t, err)
}

func TestVistas(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeStore{snap: testSnapshot("s1")}, nil)
	ctx := context.Background()

	orders, err := uc.GetOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.CountDTO{{Label: "Delivered", Count: 2}}, orders.StatusCounts)

	suppliers, err := uc.GetSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers.Ranking, 1)

	inv, err := uc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inv.ReorderAlerts)
	assert.Nil(t, inv.AvgForecastAccuracy, "sin pronósticos la precisión es indeterminada")

	tr, err := uc.GetTransportation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", tr.BestCarrier)

	costs, err := uc.GetCosts(ctx)
	require.NoError(t, err)
	assert.Len(t, costs.Trend, 1)
}

// ── SnapshotUseCase ───────────────────────────────────────────────────────────

func TestSnapshotInfo(t *testing.T) {
	uc := usecase.NewSnapshotUseCase(&fakeStore{snap: testSnapshot("s1")}, nil)

	info, err := uc.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s1", info.SnapshotID)
	require.Len(t, info.Tables, 1)
	assert.Equal(t, 1, info.Tables[0].MissingDates)
	assert.Equal(t, "order_date", info.Tables[0].Columns[0].Column)
}

func TestSnapshotReload(t *testing.T) {
	store := &fakeStore{snap: testSnapshot("s1"), next: testSnapshot("s2")}
	rec := &fakeRecorder{}
	uc := usecase.NewSnapshotUseCase(store, rec)

	info, err := uc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s2", info.SnapshotID)
	assert.Equal(t, []error{nil}, rec.results)
}

func TestSnapshotReload_Error(t *testing.T) {
	cause := &dataset.MissingColumnError{Table: "orders", Column: "order_date"}
	store := &fakeStore{snap: testSnapshot("s1"), reloadErr: cause}
	rec := &fakeRecorder{}
	uc := usecase.NewSnapshotUseCase(store, rec)

	_, err := uc.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingColumn))
	require.Len(t, rec.results, 1)
	assert.Error(t, rec.results[0])

	info, err := uc.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s1", info.SnapshotID, "el snapshot anterior sigue vigente")
}
