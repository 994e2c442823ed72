// report carga la fuente configurada una sola vez y deja el resumen ejecutivo en disco.
//
// Uso: go run ./cmd/report [directorio-salida]
// Por defecto escribe en ./report.
// Escribe: summary.json, summary.pdf y tables.xlsx (las seis tablas crudas, una hoja por tabla).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/insights"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/loader"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/usecase"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/repository"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/datasource"
	infrapdf "github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/pdf"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/xlsx"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/config"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/logger"
)

func main() {
	outDir := "report"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, outDir); err != nil {
		log.Error().Err(err).Msg("reporte no generado")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, outDir string) error {
	src, closeSource, err := datasource.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	store := loader.NewStore(loader.New(src, log.Zerolog()))
	if _, err := store.Reload(ctx); err != nil {
		return err
	}

	uc := usecase.NewDashboardUseCase(store, infrapdf.NewMarotoSummaryGenerator(cfg.App.Name))
	summary, err := uc.GetSummary(ctx)
	if err != nil {
		return err
	}
	pdfBytes, err := uc.GetSummaryPDF(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("crear %s: %w", outDir, err)
	}

	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar resumen: %w", err)
	}
	if err := writeFile(filepath.Join(outDir, "summary.json"), jsonBytes); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "summary.pdf"), pdfBytes); err != nil {
		return err
	}

	tables, err := rawTables(ctx, src)
	if err != nil {
		return err
	}
	if err := xlsx.WriteWorkbook(filepath.Join(outDir, "tables.xlsx"), tables); err != nil {
		return err
	}

	warnings := 0
	for _, in := range summary.Insights {
		if in.Severity == string(insights.SeverityWarning) {
			warnings++
		}
	}
	log.Info().
		Str("snapshot_id", summary.SnapshotID).
		Str("out", outDir).
		Int("warnings", warnings).
		Msg("reporte generado")
	return nil
}

// rawTables relee las tablas tal como vienen de la fuente, sin normalizar.
func rawTables(ctx context.Context, src repository.TableSource) ([]*dataset.Table, error) {
	names := dataset.TableNames()
	tables := make([]*dataset.Table, 0, len(names))
	for _, name := range names {
		t, err := src.ReadTable(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("exportar %s: %w", name, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}
