package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ecopumpafrik/gestion-api/internal/application/analytics"
)

var _ analytics.ReportPDFGenerator = (*MarotoGenerator)(nil)

// GenerateReportPDF rend un rapport tabulaire: en-tête société, titre et
// période, puis la table avec sa ligne de totaux. Un rapport sans lignes est
// rendu avec la mention "Aucune donnée sur la période".
func (g *MarotoGenerator) GenerateReportPDF(_ context.Context, report *analytics.Report) ([]byte, error) {
	m := g.newDocument(report.Titre)

	periode := fmt.Sprintf("du %s au %s",
		report.PeriodeDu.Format("02/01/2006"), report.PeriodeAu.Format("02/01/2006"))
	m.AddRows(g.headerRow(report.Titre, "", periode))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(reportHeaderRow(report.Colonnes))
	if len(report.Lignes) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Aucune donnée sur la période", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, cells := range report.Lignes {
		m.AddRows(reportDataRow(cells, report.Colonnes, false))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if len(report.Totaux) == len(report.Colonnes) {
		m.AddRows(reportDataRow(report.Totaux, report.Colonnes, true))
	}

	return render(m)
}

// reportHeaderRow: en-tête de la table, colonnes à largeur uniforme.
func reportHeaderRow(colonnes []string) core.Row {
	widths := columnWidths(len(colonnes))
	cols := make([]core.Col, 0, len(colonnes))
	for i, label := range colonnes {
		cols = append(cols, col.New(widths[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})))
	}
	return row.New(8).Add(cols...)
}

func reportDataRow(cells, colonnes []string, bold bool) core.Row {
	widths := columnWidths(len(colonnes))
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		w := 1
		if i < len(widths) {
			w = widths[i]
		}
		cols = append(cols, col.New(w).Add(text.New(cell, props.Text{
			Size: 8, Style: style, Top: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// columnWidths répartit la grille 12 de Maroto entre n colonnes, le reste sur
// la première (celle des libellés).
func columnWidths(n int) []int {
	if n == 0 {
		return nil
	}
	base := 12 / n
	if base == 0 {
		base = 1
	}
	widths := make([]int, n)
	used := 0
	for i := range widths {
		widths[i] = base
		used += base
	}
	if used < 12 {
		widths[0] += 12 - used
	}
	return widths
}
