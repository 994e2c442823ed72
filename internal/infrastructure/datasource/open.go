// Package datasource elige la implementación de repository.TableSource según DATA_SOURCE.
package datasource

import (
	"context"
	"fmt"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/repository"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/csvsource"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/postgres"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/xlsx"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/config"
)

// Open construye la fuente configurada. close libera recursos (pool de Postgres)
// y nunca es nil.
func Open(ctx context.Context, cfg *config.Config) (src repository.TableSource, close func(), err error) {
	noop := func() {}
	switch cfg.Data.Source {
	case config.SourceCSV:
		s, err := csvsource.New(cfg.Data.Dir, cfg.Data.Charset)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case config.SourceXLSX:
		return xlsx.New(cfg.Data.Workbook), noop, nil
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("datasource: conexión a PostgreSQL: %w", err)
		}
		return postgres.NewTableSource(pool, cfg.Data.Schema), pool.Close, nil
	default:
		return nil, noop, fmt.Errorf("datasource: fuente %q no soportada", cfg.Data.Source)
	}
}

// Describe texto corto de la fuente para los logs de arranque.
func Describe(cfg *config.Config) string {
	switch cfg.Data.Source {
	case config.SourceCSV:
		return "csv:" + cfg.Data.Dir
	case config.SourceXLSX:
		return "xlsx:" + cfg.Data.Workbook
	case config.SourcePostgres:
		return "postgres:" + cfg.Data.Schema
	default:
		return cfg.Data.Source
	}
}
