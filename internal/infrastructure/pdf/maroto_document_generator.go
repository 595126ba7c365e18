// Package pdf implémente le rendu PDF des documents commerciaux (devis,
// factures, reçus de paiement) et des rapports financiers avec Maroto v2.
//
// Layout de la page A4 d'un document:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Société + coordonnées  │  Type + Numéro + Date     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT: Nom + CC/NIF + contact                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Item | Réf | Désignation | Qté | P.U. | Total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX: Sous-total / TVA / TOTAL TTC / NET À PAYER         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIED: conditions de paiement + délai de livraison          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotoconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/pkg/config"
)

// ── Palette ──────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.DocumentPDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator rend les documents et rapports en PDF. L'identité de la
// société portée en en-tête vient de la configuration.
type MarotoGenerator struct {
	societe config.SocieteConfig
}

// NewMarotoGenerator construit le générateur.
func NewMarotoGenerator(societe config.SocieteConfig) *MarotoGenerator {
	return &MarotoGenerator{societe: societe}
}

// GenerateQuotePDF rend un devis.
func (g *MarotoGenerator) GenerateQuotePDF(_ context.Context, quote *entity.Quote, client *entity.Client) ([]byte, error) {
	m := g.newDocument("Devis")

	m.AddRows(g.headerRow("DEVIS", quote.Numero, quote.DateDevis.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(quote.ClientNom, client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(quote.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(quote.SousTotal, quote.TVA, quote.TotalTTC, quote.NetAPayer, quote.Devise))
	m.AddRows(footerRows(quote.ConditionsPaiement, quote.DelaiLivraison)...)

	return render(m)
}

// GenerateInvoicePDF rend une facture, avec l'état du règlement.
func (g *MarotoGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice, client *entity.Client) ([]byte, error) {
	m := g.newDocument("Facture")

	m.AddRows(g.headerRow("FACTURE", invoice.Numero, invoice.DateFacture.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(invoice.ClientNom, client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(invoice.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice.SousTotal, invoice.TVA, invoice.TotalTTC, invoice.NetAPayer, invoice.Devise))
	m.AddRows(paymentStateRow(invoice))
	m.AddRows(footerRows(invoice.ConditionsPaiement, invoice.DelaiLivraison)...)

	return render(m)
}

// GeneratePaymentPDF rend le reçu d'un encaissement. La facture peut être nil
// (paiement orphelin): le reçu reste imprimable sans référence de facture.
func (g *MarotoGenerator) GeneratePaymentPDF(_ context.Context, payment *entity.Payment, invoice *entity.Invoice) ([]byte, error) {
	m := g.newDocument("Reçu de paiement")

	m.AddRows(g.headerRow("REÇU DE PAIEMENT", payment.ID, payment.DatePaiement.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	facture := "—"
	if invoice != nil {
		facture = invoice.Numero
	}
	m.AddRows(row.New(22).Add(
		col.New(12).Add(
			text.New("Facture: "+facture, props.Text{Size: 10, Top: 1}),
			text.New(fmt.Sprintf("Montant: %s %s", formatMontant(payment.Montant), payment.Devise), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7, Color: colorPrimary,
			}),
			text.New(fmt.Sprintf("Mode: %s   |   Référence: %s",
				payment.ModePaiement, nonEmpty(payment.ReferencePaiement, "—"),
			), props.Text{Size: 9, Top: 15, Color: colorGray}),
		),
	))

	if invoice != nil {
		m.AddRows(row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Après règlement: payé %s / %s %s (statut: %s)",
					formatMontant(invoice.MontantPaye), formatMontant(invoice.TotalTTC),
					invoice.Devise, invoice.StatutPaiement,
				), props.Text{Size: 9, Top: 2}),
			),
		))
	}

	return render(m)
}

// ── Sections ─────────────────────────────────────────────────────────────────

func (g *MarotoGenerator) newDocument(title string) core.Maroto {
	cfg := marotoconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.societe.Nom, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: société à gauche, type + numéro + date à droite.
func (g *MarotoGenerator) headerRow(docType, numero, date string) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.societe.Nom, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("CC: %s   |   NIF: %s",
				nonEmpty(g.societe.NumeroCC, "—"), nonEmpty(g.societe.NIF, "—"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(fmt.Sprintf("%s   |   Tél: %s   |   %s",
				nonEmpty(g.societe.Adresse, "—"),
				nonEmpty(g.societe.Telephone, "—"),
				nonEmpty(g.societe.Email, "—"),
			), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(docType, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(numero, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// clientRow: bloc destinataire.
func clientRow(nom string, client *entity.Client) core.Row {
	contact := "—"
	if client != nil {
		contact = fmt.Sprintf("CC: %s   |   NIF: %s   |   Tél: %s",
			nonEmpty(client.NumeroCC, "—"), nonEmpty(client.NIF, "—"),
			nonEmpty(client.Telephone, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nom, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: en-tête de la table des lignes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Réf.", 2, align.Left),
		h("Désignation", 4, align.Left),
		h("Qté", 1, align.Center),
		h("P. unitaire", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableLineRows: une ligne de table par ligne de document.
func tableLineRows(lines []entity.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Item),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.Ref, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(4).Add(text.New(
				l.Designation,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.Quantite.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMontant(l.PrixUnitaire),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMontant(l.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloc des totaux aligné à droite.
func totalsRow(sousTotal, tva, totalTTC, netAPayer decimal.Decimal, devise string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary,
		})
	}

	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(
			label("Sous-total:"),
			label("TVA:"),
			label("Total TTC:"),
			grandLabel("NET À PAYER:"),
		),
		col.New(4).Add(
			value(formatMontant(sousTotal)+" "+devise),
			value(formatMontant(tva)+" "+devise),
			value(formatMontant(totalTTC)+" "+devise),
			grandValue(formatMontant(netAPayer)+" "+devise),
		),
	)
}

// paymentStateRow: état du règlement d'une facture.
func paymentStateRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Règlement: %s   |   Payé: %s %s   |   Reste dû: %s %s",
				invoice.StatutPaiement,
				formatMontant(invoice.MontantPaye), invoice.Devise,
				formatMontant(invoice.Outstanding()), invoice.Devise,
			), props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}

// footerRows: conditions de paiement et délai de livraison.
func footerRows(conditions, delai string) []core.Row {
	return []core.Row{
		line.NewRow(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Conditions de paiement: %s   |   Délai de livraison: %s",
				nonEmpty(conditions, "—"), nonEmpty(delai, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
	}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: génération du document: %w", err)
	}
	return doc.GetBytes(), nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMontant groupe les milliers avec des espaces, usage francophone.
// Ex: "2500000.00" → "2 500 000.00"
func formatMontant(d decimal.Decimal) string {
	s := d.StringFixed(2)
	intPart, fracPart := s, ""
	if i := len(s) - 3; i > 0 && s[i] == '.' {
		intPart, fracPart = s[:i], s[i:]
	}
	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, intPart[i])
		}
		intPart = string(buf)
	}
	if neg {
		intPart = "-" + intPart
	}
	return intPart + fracPart
}
