package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// Types de rapport exposés par GET /api/pdf/rapport/:type.
const (
	RapportJournalVentes       = "journal_ventes"
	RapportBalanceClients      = "balance_clients"
	RapportJournalAchats       = "journal_achats"
	RapportBalanceFournisseurs = "balance_fournisseurs"
	RapportTresorerie          = "tresorerie"
	RapportCompteResultat      = "compte_resultat"
)

// Report modèle tabulaire rendu en PDF: un titre, une période, des colonnes,
// des lignes et une ligne de totaux. Le générateur PDF n'a aucune connaissance
// du type de rapport, seulement de ce modèle.
type Report struct {
	Type      string
	Titre     string
	PeriodeDu time.Time
	PeriodeAu time.Time
	Colonnes  []string
	Lignes    [][]string
	Totaux    []string // même arité que Colonnes, cellules vides admises
}

// ReportPDFGenerator rend un rapport tabulaire en PDF. Implémenté par
// l'infrastructure (Maroto).
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *Report) ([]byte, error)
}

// ReportsUseCase assemble les six rapports financiers à partir des requêtes
// de lecture. Le flux achats n'étant pas géré, le journal des achats et la
// balance fournisseurs sont rendus vides mais restent imprimables.
type ReportsUseCase struct {
	stats    repository.StatsRepository
	payments repository.PaymentRepository
	gen      ReportPDFGenerator
	now      func() time.Time
}

func NewReportsUseCase(stats repository.StatsRepository, payments repository.PaymentRepository, gen ReportPDFGenerator) *ReportsUseCase {
	return &ReportsUseCase{stats: stats, payments: payments, gen: gen, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *ReportsUseCase) WithClock(now func() time.Time) *ReportsUseCase {
	uc.now = now
	return uc
}

// ReportPDF construit le rapport demandé et le rend en PDF.
// Type inconnu: domain.ErrInvalidInput.
func (uc *ReportsUseCase) ReportPDF(ctx context.Context, typ string, from, to time.Time) ([]byte, error) {
	report, err := uc.BuildReport(ctx, typ, from, to)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateReportPDF(ctx, report)
}

// BuildReport assemble le modèle tabulaire du rapport demandé. Si les bornes
// sont à zéro, la période par défaut court du premier jour du mois en cours à
// la fin du jour courant.
func (uc *ReportsUseCase) BuildReport(ctx context.Context, typ string, from, to time.Time) (*Report, error) {
	now := uc.now()
	if from.IsZero() && to.IsZero() {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			Add(24*time.Hour - time.Nanosecond)
	}

	switch typ {
	case RapportJournalVentes:
		return uc.journalVentes(ctx, from, to)
	case RapportBalanceClients:
		return uc.balanceClients(ctx, from, to)
	case RapportJournalAchats:
		return emptyReport(typ, "Journal des achats", from, to,
			[]string{"Date", "Numéro", "Fournisseur", "Montant HT", "TVA", "Montant TTC"}), nil
	case RapportBalanceFournisseurs:
		return emptyReport(typ, "Balance fournisseurs", from, to,
			[]string{"Fournisseur", "Facturé", "Payé", "Solde"}), nil
	case RapportTresorerie:
		return uc.tresorerie(ctx, from, to)
	case RapportCompteResultat:
		return uc.compteResultat(ctx, from, to)
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (uc *ReportsUseCase) journalVentes(ctx context.Context, from, to time.Time) (*Report, error) {
	lignes, err := uc.stats.GetSalesJournal(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(lignes))
	totalHT, totalTVA, totalTTC := decimal.Zero, decimal.Zero, decimal.Zero
	for _, l := range lignes {
		rows = append(rows, []string{
			l.DateFacture.Format("02/01/2006"),
			l.Numero,
			l.ClientNom,
			l.SousTotal.StringFixed(2),
			l.TVA.StringFixed(2),
			l.TotalTTC.StringFixed(2),
			l.Devise,
		})
		totalHT = totalHT.Add(l.SousTotal)
		totalTVA = totalTVA.Add(l.TVA)
		totalTTC = totalTTC.Add(l.TotalTTC)
	}

	return &Report{
		Type:      RapportJournalVentes,
		Titre:     "Journal des ventes",
		PeriodeDu: from,
		PeriodeAu: to,
		Colonnes:  []string{"Date", "Numéro", "Client", "Montant HT", "TVA", "Montant TTC", "Devise"},
		Lignes:    rows,
		Totaux:    []string{"", "", "Totaux", totalHT.StringFixed(2), totalTVA.StringFixed(2), totalTTC.StringFixed(2), ""},
	}, nil
}

func (uc *ReportsUseCase) balanceClients(ctx context.Context, from, to time.Time) (*Report, error) {
	lignes, err := uc.stats.GetClientBalances(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(lignes))
	totalFacture, totalPaye, totalSolde := decimal.Zero, decimal.Zero, decimal.Zero
	for _, l := range lignes {
		rows = append(rows, []string{
			l.TiersNom,
			l.Facture.StringFixed(2),
			l.Paye.StringFixed(2),
			l.Solde.StringFixed(2),
			l.Devise,
		})
		totalFacture = totalFacture.Add(l.Facture)
		totalPaye = totalPaye.Add(l.Paye)
		totalSolde = totalSolde.Add(l.Solde)
	}

	return &Report{
		Type:      RapportBalanceClients,
		Titre:     "Balance clients",
		PeriodeDu: from,
		PeriodeAu: to,
		Colonnes:  []string{"Client", "Facturé", "Payé", "Solde", "Devise"},
		Lignes:    rows,
		Totaux:    []string{"Totaux", totalFacture.StringFixed(2), totalPaye.StringFixed(2), totalSolde.StringFixed(2), ""},
	}, nil
}

func (uc *ReportsUseCase) tresorerie(ctx context.Context, from, to time.Time) (*Report, error) {
	paiements, err := uc.payments.ListInPeriod(from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(paiements))
	total := decimal.Zero
	for _, p := range paiements {
		rows = append(rows, []string{
			p.DatePaiement.Format("02/01/2006"),
			p.ModePaiement,
			p.ReferencePaiement,
			p.Montant.StringFixed(2),
			p.Devise,
		})
		total = total.Add(p.Montant)
	}

	return &Report{
		Type:      RapportTresorerie,
		Titre:     "Trésorerie (encaissements)",
		PeriodeDu: from,
		PeriodeAu: to,
		Colonnes:  []string{"Date", "Mode", "Référence", "Montant", "Devise"},
		Lignes:    rows,
		Totaux:    []string{"", "", "Total encaissé", total.StringFixed(2), ""},
	}, nil
}

// compteResultat oppose le chiffre d'affaires de la période aux achats. Les
// achats n'étant pas suivis, la colonne charges est à zéro et le résultat
// égale les produits.
func (uc *ReportsUseCase) compteResultat(ctx context.Context, from, to time.Time) (*Report, error) {
	counters, err := uc.stats.GetPeriodCounters(ctx, from, to)
	if err != nil {
		return nil, err
	}

	produits := counters.MontantFacture
	charges := decimal.Zero
	resultat := produits.Sub(charges)

	return &Report{
		Type:      RapportCompteResultat,
		Titre:     "Compte de résultat",
		PeriodeDu: from,
		PeriodeAu: to,
		Colonnes:  []string{"Poste", "Montant"},
		Lignes: [][]string{
			{"Produits (ventes facturées)", produits.StringFixed(2)},
			{"Charges (achats)", charges.StringFixed(2)},
		},
		Totaux: []string{"Résultat", resultat.StringFixed(2)},
	}, nil
}

func emptyReport(typ, titre string, from, to time.Time, colonnes []string) *Report {
	return &Report{
		Type:      typ,
		Titre:     titre,
		PeriodeDu: from,
		PeriodeAu: to,
		Colonnes:  colonnes,
		Lignes:    [][]string{},
		Totaux:    make([]string, len(colonnes)),
	}
}
