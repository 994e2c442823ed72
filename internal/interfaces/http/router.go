package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/usecase"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *usecase.DashboardUseCase
	SnapshotUC  *usecase.SnapshotUseCase
	Metrics     http.Handler // nil = sin /metrics
	JWTSecret   string       // vacío = recarga deshabilitada
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Dashboard (público, solo lectura)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/summary.pdf", dashboardHandler.GetSummaryPDF)
	dashboard.Get("/orders", dashboardHandler.GetOrders)
	dashboard.Get("/suppliers", dashboardHandler.GetSuppliers)
	dashboard.Get("/inventory", dashboardHandler.GetInventory)
	dashboard.Get("/transportation", dashboardHandler.GetTransportation)
	dashboard.Get("/costs", dashboardHandler.GetCosts)

	// Snapshot: consulta pública, recarga con Bearer Token de admin
	snapshotHandler := NewSnapshotHandler(deps.SnapshotUC, deps.Log)
	api.Get("/snapshot", snapshotHandler.Info)
	if deps.JWTSecret != "" {
		api.Post("/snapshot/reload",
			AuthMiddleware(deps.JWTSecret),
			RequireRole(jwt.RoleAdmin),
			snapshotHandler.Reload,
		)
	}
}
