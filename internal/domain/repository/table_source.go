package repository

import (
	"context"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
)

// TableSource define el puerto de lectura de tablas crudas (CSV, XLSX o Postgres).
// ReadTable devuelve encabezado y filas como texto; la normalización ocurre aguas arriba.
// Si la fuente no tiene la tabla debe devolver un error que envuelva domain.ErrTableNotFound.
type TableSource interface {
	ReadTable(ctx context.Context, name string) (*dataset.Table, error)
}
