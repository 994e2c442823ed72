package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingColumn       = errors.New("columna requerida ausente")
	ErrUnknownTable        = errors.New("tabla desconocida")
	ErrTableNotFound       = errors.New("la fuente no contiene la tabla")
	ErrSnapshotUnavailable = errors.New("no hay snapshot cargado")
)
