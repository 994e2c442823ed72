package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/usecase"
)

// SnapshotHandler estado de la carga de datos y recarga manual.
type SnapshotHandler struct {
	uc  *usecase.SnapshotUseCase
	log zerolog.Logger
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(uc *usecase.SnapshotUseCase, log zerolog.Logger) *SnapshotHandler {
	return &SnapshotHandler{uc: uc, log: log}
}

// Info GET /api/snapshot
//
// Respuesta: SnapshotInfoDTO (snapshot_id, loaded_at, tables[] con celdas rellenadas).
func (h *SnapshotHandler) Info(c *fiber.Ctx) error {
	info, err := h.uc.Info(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(info)
}

// Reload relee la fuente de datos (solo admin).
// POST /api/snapshot/reload
//
// Si la recarga falla el snapshot anterior sigue sirviendo y se responde el diagnóstico.
func (h *SnapshotHandler) Reload(c *fiber.Ctx) error {
	info, err := h.uc.Reload(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("user_id", GetUserID(c)).Msg("recarga de datos")
		return writeError(c, err)
	}
	h.log.Info().
		Str("user_id", GetUserID(c)).
		Str("snapshot_id", info.SnapshotID).
		Msg("datos recargados")
	return c.JSON(info)
}
