package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
)

// writeError traduce errores de dominio a HTTP con dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSnapshotUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SNAPSHOT_UNAVAILABLE", Message: "los datos aún no están cargados"})
	case errors.Is(err, domain.ErrMissingColumn):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_COLUMN", Message: err.Error()})
	case errors.Is(err, domain.ErrTableNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "TABLE_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownTable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
