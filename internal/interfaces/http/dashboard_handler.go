package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/usecase"
)

// DashboardHandler maneja los endpoints de solo lectura del tablero.
type DashboardHandler struct {
	uc  *usecase.DashboardUseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary KPIs, seis insights y desglose de costos.
// GET /api/dashboard/summary
//
// Las tasas indeterminadas (tabla vacía) se devuelven como null.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summary)
}

// GetSummaryPDF resumen ejecutivo en PDF.
// GET /api/dashboard/summary.pdf
func (h *DashboardHandler) GetSummaryPDF(c *fiber.Ctx) error {
	out, err := h.uc.GetSummaryPDF(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="supply-chain-summary.pdf"`)
	return c.Send(out)
}

// GetOrders GET /api/dashboard/orders
func (h *DashboardHandler) GetOrders(c *fiber.Ctx) error {
	v, err := h.uc.GetOrders(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// GetSuppliers GET /api/dashboard/suppliers
func (h *DashboardHandler) GetSuppliers(c *fiber.Ctx) error {
	v, err := h.uc.GetSuppliers(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// GetInventory GET /api/dashboard/inventory
func (h *DashboardHandler) GetInventory(c *fiber.Ctx) error {
	v, err := h.uc.GetInventory(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// GetTransportation GET /api/dashboard/transportation
func (h *DashboardHandler) GetTransportation(c *fiber.Ctx) error {
	v, err := h.uc.GetTransportation(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// GetCosts GET /api/dashboard/costs
func (h *DashboardHandler) GetCosts(c *fiber.Ctx) error {
	v, err := h.uc.GetCosts(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

func (h *DashboardHandler) fail(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("dashboard")
	return writeError(c, err)
}
