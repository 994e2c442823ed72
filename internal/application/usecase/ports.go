package usecase

import (
	"context"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
)

// SnapshotProvider entrega el snapshot vigente (loader.Store).
type SnapshotProvider interface {
	Current() (*dataset.Snapshot, error)
}

// SnapshotReloader además permite recargar la fuente de datos.
type SnapshotReloader interface {
	SnapshotProvider
	Reload(ctx context.Context) (*dataset.Snapshot, error)
}

// SummaryPDFGenerator genera el resumen ejecutivo en PDF.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary dto.ExecutiveSummaryDTO) ([]byte, error)
}

// ReloadRecorder registra el resultado de cada recarga (métricas).
type ReloadRecorder interface {
	ObserveReload(err error)
}
