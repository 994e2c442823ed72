package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que la fuente distingue.
const (
	codeUndefinedTable  = "42P01" // relation does not exist
	codeUndefinedSchema = "3F000" // invalid_schema_name
)

// isUndefinedTable verifica si un error es relation does not exist o un esquema inexistente.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUndefinedTable || pgErr.Code == codeUndefinedSchema
	}
	return false
}
