// Package analytics contient les cas d'usage de lecture agrégée: tableau de
// bord et rapports financiers.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// DashboardUseCase calcule le résumé chiffré de l'activité.
//
// Tout est recalculé à la demande par le StatsRepository (requêtes
// read-only); aucune projection pré-agrégée n'est maintenue.
type DashboardUseCase struct {
	stats repository.StatsRepository
	now   func() time.Time
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetStats construit le DashboardStats pour la fenêtre [from, to].
//
// Si les deux bornes sont à zéro, la fenêtre par défaut court du premier jour
// du mois en cours à la fin du jour courant. Sur un système vide toutes les
// valeurs sont à zéro, jamais une erreur.
func (uc *DashboardUseCase) GetStats(ctx context.Context, from, to time.Time) (*dto.DashboardStats, error) {
	now := uc.now()
	if from.IsZero() && to.IsZero() {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			Add(24*time.Hour - time.Nanosecond)
	}

	// ── Goroutines pour paralléliser les compteurs globaux ────────────────────
	type countResult struct {
		n   int64
		err error
	}
	type periodResult struct {
		counters *repository.PeriodCounters
		err      error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}

	clientsCh := make(chan countResult, 1)
	fcfaCh := make(chan countResult, 1)
	eurCh := make(chan countResult, 1)
	suppliersCh := make(chan countResult, 1)
	quotesCh := make(chan countResult, 1)
	invoicesCh := make(chan countResult, 1)
	alertsCh := make(chan countResult, 1)
	periodCh := make(chan periodResult, 1)
	creancesCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.stats.CountClients(ctx)
		clientsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountClientsByDevise(ctx, "FCFA")
		fcfaCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountClientsByDevise(ctx, "EUR")
		eurCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountSuppliers(ctx)
		suppliersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountQuotes(ctx)
		quotesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountInvoices(ctx)
		invoicesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountStockAlerts(ctx)
		alertsCh <- countResult{n, err}
	}()
	go func() {
		c, err := uc.stats.GetPeriodCounters(ctx, from, to)
		periodCh <- periodResult{c, err}
	}()
	go func() {
		total, err := uc.stats.SumOutstanding(ctx)
		creancesCh <- sumResult{total, err}
	}()

	clients := <-clientsCh
	fcfa := <-fcfaCh
	eur := <-eurCh
	suppliers := <-suppliersCh
	quotes := <-quotesCh
	invoices := <-invoicesCh
	alerts := <-alertsCh
	period := <-periodCh
	creances := <-creancesCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: total clients: %w", clients.err)
	}
	if fcfa.err != nil {
		return nil, fmt.Errorf("dashboard: clients FCFA: %w", fcfa.err)
	}
	if eur.err != nil {
		return nil, fmt.Errorf("dashboard: clients EUR: %w", eur.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: total fournisseurs: %w", suppliers.err)
	}
	if quotes.err != nil {
		return nil, fmt.Errorf("dashboard: total devis: %w", quotes.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: total factures: %w", invoices.err)
	}
	if alerts.err != nil {
		return nil, fmt.Errorf("dashboard: alertes stock: %w", alerts.err)
	}
	if period.err != nil {
		return nil, fmt.Errorf("dashboard: compteurs de période: %w", period.err)
	}
	if creances.err != nil {
		return nil, fmt.Errorf("dashboard: créances: %w", creances.err)
	}

	return &dto.DashboardStats{
		TotalClients:           clients.n,
		TotalFournisseurs:      suppliers.n,
		TotalDevis:             quotes.n,
		TotalFactures:          invoices.n,
		DevisPeriode:           period.counters.DevisCount,
		FacturesPeriode:        period.counters.FacturesCount,
		ClientsFCFA:            fcfa.n,
		ClientsEUR:             eur.n,
		MontantDevisPeriode:    period.counters.MontantDevis.Round(2),
		MontantFacturesPeriode: period.counters.MontantFacture.Round(2),
		TotalCreances:          creances.total.Round(2),
		AlertesStock:           alerts.n,
		PeriodeDu:              from.Format("2006-01-02"),
		PeriodeAu:              to.Format("2006-01-02"),
	}, nil
}
