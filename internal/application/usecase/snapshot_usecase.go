package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
)

// SnapshotUseCase expone el estado de la carga y la recarga manual.
type SnapshotUseCase struct {
	store    SnapshotReloader
	recorder ReloadRecorder
}

// NewSnapshotUseCase construye el caso de uso. recorder puede ser nil.
func NewSnapshotUseCase(store SnapshotReloader, recorder ReloadRecorder) *SnapshotUseCase {
	return &SnapshotUseCase{store: store, recorder: recorder}
}

// Info id, fecha de carga y reporte de normalización del snapshot vigente.
func (uc *SnapshotUseCase) Info(_ context.Context) (*dto.SnapshotInfoDTO, error) {
	snap, err := uc.store.Current()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return snapshotInfo(snap), nil
}

// Reload relee la fuente. Si falla, el snapshot anterior sigue vigente.
func (uc *SnapshotUseCase) Reload(ctx context.Context) (*dto.SnapshotInfoDTO, error) {
	snap, err := uc.store.Reload(ctx)
	if uc.recorder != nil {
		uc.recorder.ObserveReload(err)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: recarga: %w", err)
	}
	return snapshotInfo(snap), nil
}

func snapshotInfo(snap *dataset.Snapshot) *dto.SnapshotInfoDTO {
	reports := snap.Reports()
	tables := make([]dto.TableInfoDTO, 0, len(reports))
	for _, r := range reports {
		cols := make([]dto.ColumnInfoDTO, 0, len(r.Columns))
		for _, c := range r.Columns {
			cols = append(cols, dto.ColumnInfoDTO{
				Column:  c.Column,
				Kind:    c.Kind,
				Present: c.Present,
				Filled:  c.Filled,
				Missing: c.Missing,
			})
		}
		tables = append(tables, dto.TableInfoDTO{
			Table:        r.Table,
			Rows:         r.Rows,
			FilledCells:  r.FilledCells(),
			MissingDates: r.MissingDates(),
			Columns:      cols,
		})
	}
	return &dto.SnapshotInfoDTO{
		SnapshotID: snap.ID(),
		LoadedAt:   snap.LoadedAt().Format(time.RFC3339),
		Tables:     tables,
	}
}
