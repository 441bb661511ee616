// Package pdf implementa la exportación del resumen financiero como PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la operación + fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INGRESOS: Revenue total / Costo de compras / Utilidad bruta │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GASTOS: Vehículos / Generales / Salarios pagados            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: Utilidad neta + margen %                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/reports"
)

var _ reports.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 21, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// FinancialOverview genera el resumen financiero en PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) FinancialOverview(data dto.FinancialOverviewDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen Financiero", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("INGRESOS"))
	m.AddRows(
		amountRow("Revenue total de ventas:", data.TotalRevenue, false),
		amountRow("Costo total de compras:", data.TotalPurchaseCost, false),
		amountRow("Utilidad bruta:", data.GrossProfit, true),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("GASTOS"))
	m.AddRows(
		amountRow("Gastos de vehículos:", data.TotalCarExpenses, false),
		amountRow("Gastos generales:", data.TotalOtherExpenses, false),
		amountRow("Salarios pagados:", data.TotalSalariesPaid, false),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("RESULTADO"))
	m.AddRows(
		amountRow("Utilidad neta:", data.NetProfit, true),
		amountRow("Margen de utilidad:", data.ProfitMarginPct+" %", false),
	)

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Cifras en "+data.Currency+". Generado desde el libro de operaciones.", props.Text{
			Size: 6.5, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Fruit Track", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen financiero de la operación", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE FINANCIERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// amountRow: etiqueta (izq) y monto alineado a la derecha.
func amountRow(label, amount string, highlight bool) core.Row {
	size := 9.0
	style := fontstyle.Normal
	color := (*props.Color)(nil)
	if highlight {
		size = 10
		style = fontstyle.Bold
		color = colorPrimary
	}
	return row.New(6).Add(
		col.New(7).Add(text.New(label, props.Text{
			Size: size, Style: style, Align: align.Left, Top: 1, Left: 2, Color: color,
		})),
		col.New(5).Add(text.New("$"+amount, props.Text{
			Size: size, Style: style, Align: align.Right, Top: 1, Right: 2, Color: color,
		})),
	)
}
