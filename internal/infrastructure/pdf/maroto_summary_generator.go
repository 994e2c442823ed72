// Package pdf genera el resumen ejecutivo del tablero en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + aplicación  │  Snapshot + fecha de carga   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: 2 filas de 4 tarjetas (etiqueta + valor)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INSIGHTS: una línea por regla con su severidad              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COSTOS: Categoría | Compacto | Valor completo               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/dto"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/numfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 190, Green: 90, Blue: 0}
	colorHealthy = &props.Color{Red: 30, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSummaryGenerator implementa usecase.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct {
	appName string
}

// NewMarotoSummaryGenerator construye el generador; appName va en el encabezado y metadatos.
func NewMarotoSummaryGenerator(appName string) *MarotoSummaryGenerator {
	return &MarotoSummaryGenerator{appName: appName}
}

// GenerateSummaryPDF genera el PDF del resumen ejecutivo y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(_ context.Context, summary dto.ExecutiveSummaryDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Supply Chain Executive Summary", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("KEY PERFORMANCE INDICATORS"))
	m.AddRows(kpiRows(summary.KPIs)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("INSIGHTS"))
	m.AddRows(insightRows(summary.Insights)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("COST BREAKDOWN BY CATEGORY"))
	m.AddRows(costHeaderRow())
	m.AddRows(costRows(summary.CostBreakdown)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y snapshot + fecha de carga (der).
func headerRow(appName string, s dto.ExecutiveSummaryDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Supply Chain Executive Summary", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(appName, "supply-chain-dashboard"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SNAPSHOT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(s.SnapshotID, "-"), props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Loaded: "+nonEmpty(s.LoadedAt, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// kpiRows: dos filas de cuatro tarjetas etiqueta/valor.
func kpiRows(k dto.KPISummaryDTO) []core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6}),
		)
	}
	return []core.Row{
		row.New(16).Add(
			card("Total Orders", k.TotalOrdersDisplay),
			card("On-Time Delivery", percentText(k.OnTimeDeliveryRate)),
			card("Avg Fulfillment", percentText(k.AvgFulfillmentRate)),
			card("Avg Delay (days)", valueText(k.AvgDelayDays)),
		),
		row.New(16).Add(
			card("Supply Chain Cost", k.TotalSupplyChainCostDisplay),
			card("Supplier Performance", valueText(k.SupplierPerformance)),
			card("Stock Status", percentText(k.StockStatus)),
			col.New(3),
		),
	}
}

// insightRows: una fila por regla, coloreada por severidad.
func insightRows(insights []dto.InsightDTO) []core.Row {
	rows := make([]core.Row, 0, len(insights))
	for _, in := range insights {
		tag, color := "N/A", colorGray
		switch in.Severity {
		case "warning":
			tag, color = "WARNING", colorWarning
		case "healthy":
			tag, color = "OK", colorHealthy
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(tag, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: color, Top: 1,
			})),
			col.New(10).Add(text.New(plainMessage(in.Message), props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

func costHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Category", 6, align.Left),
		h("Amount", 2, align.Right),
		h("Full value", 4, align.Right),
	)
}

func costRows(costs []dto.CostBreakdownDTO) []core.Row {
	rows := make([]core.Row, 0, len(costs))
	for _, c := range costs {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(c.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(c.Formatted, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(4).Add(text.New(c.FullValue, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("No cost records.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func valueText(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return numfmt.Plain(*v)
}

func percentText(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return numfmt.Plain(*v) + "%"
}

// plainMessage quita el emoji inicial: la fuente base del PDF no tiene esos glifos.
func plainMessage(msg string) string {
	return strings.TrimLeftFunc(msg, func(r rune) bool {
		return r > unicode.MaxASCII || unicode.IsSpace(r)
	})
}
