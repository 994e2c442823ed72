package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/analytics"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/insights"
)

// DashboardUseCase arma las respuestas del tablero a partir del snapshot vigente.
// Cada llamada lee el snapshot una sola vez: una respuesta nunca mezcla dos cargas.
type DashboardUseCase struct {
	snapshots SnapshotProvider
	pdf       SummaryPDFGenerator
}

// NewDashboardUseCase construye el caso de uso. pdf puede ser nil si no se exporta PDF.
func NewDashboardUseCase(snapshots SnapshotProvider, pdf SummaryPDFGenerator) *DashboardUseCase {
	return &DashboardUseCase{snapshots: snapshots, pdf: pdf}
}

// GetSummary KPIs, insights y desglose de costos.
func (uc *DashboardUseCase) GetSummary(_ context.Context) (*dto.ExecutiveSummaryDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen: %w", err)
	}
	kpis := analytics.ComputeKPIs(snap)
	return &dto.ExecutiveSummaryDTO{
		SnapshotID:    snap.ID(),
		LoadedAt:      snap.LoadedAt().Format(time.RFC3339),
		KPIs:          kpis.ToDTO(),
		Insights:      insights.Evaluate(kpis),
		CostBreakdown: analytics.CostBreakdown(snap.Costs()),
	}, nil
}

// GetSummaryPDF resumen ejecutivo renderizado en PDF.
func (uc *DashboardUseCase) GetSummaryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("dashboard: pdf: generador no configurado")
	}
	summary, err := uc.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateSummaryPDF(ctx, *summary)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pdf: %w", err)
	}
	return out, nil
}

// GetOrders vista de pedidos.
func (uc *DashboardUseCase) GetOrders(_ context.Context) (*dto.OrdersViewDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", err)
	}
	v := analytics.OrdersView(snap.Orders())
	return &v, nil
}

// GetSuppliers vista de proveedores.
func (uc *DashboardUseCase) GetSuppliers(_ context.Context) (*dto.SuppliersViewDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, fmt.Errorf("dashboard: proveedores: %w", err)
	}
	v := analytics.SuppliersView(snap.Suppliers())
	return &v, nil
}

// GetInventory vista de inventario y pronóstico.
func (uc *DashboardUseCase) GetInventory(_ context.Context) (*dto.InventoryViewDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", err)
	}
	v := analytics.InventoryView(snap.Inventory(), snap.Forecasts())
	return &v, nil
}

// GetTransportation vista de transporte.
func (uc *DashboardUseCase) GetTransportation(_ context.Context) (*dto.TransportationViewDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, fmt.Errorf("dashboard: transporte: %w", err)
	}
	v := analytics.TransportationView(snap.Shipments())
	return &v, nil
}

// GetCosts vista de costos.
func (uc *DashboardUseCase) GetCosts(_ context.Context) (*dto.CostsViewDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, fmt.Errorf("dashboard: costos: %w", err)
	}
	v := analytics.CostsView(snap.Costs(), snap.Suppliers())
	return &v, nil
}
