package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo implémentation read-only de StatsRepository. Les sommes utilisent
// COALESCE pour retourner zéro sur une période vide.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construit l'adaptateur.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountClients compte tous les clients.
func (r *StatsRepo) CountClients(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM clients`)
}

// CountClientsByDevise compte les clients d'une devise.
func (r *StatsRepo) CountClientsByDevise(ctx context.Context, devise string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM clients WHERE devise = $1`, devise)
}

// CountSuppliers compte tous les fournisseurs.
func (r *StatsRepo) CountSuppliers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM fournisseurs`)
}

// CountQuotes compte tous les devis.
func (r *StatsRepo) CountQuotes(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM devis`)
}

// CountInvoices compte toutes les factures.
func (r *StatsRepo) CountInvoices(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM factures`)
}

// CountStockAlerts compte les articles strictement sous leur seuil d'alerte.
func (r *StatsRepo) CountStockAlerts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM articles_stock WHERE quantite_disponible < seuil_alerte`)
}

// GetPeriodCounters calcule compteurs et sommes des devis et des factures dont
// la date d'émission tombe dans [from, to]. Deux requêtes, une par table.
func (r *StatsRepo) GetPeriodCounters(ctx context.Context, from, to time.Time) (*repository.PeriodCounters, error) {
	var out repository.PeriodCounters
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_ttc), 0)
		FROM devis WHERE date_devis BETWEEN $1 AND $2`,
		from, to,
	).Scan(&out.DevisCount, &out.MontantDevis)
	if err != nil {
		return nil, fmt.Errorf("compteurs devis de période: %w", err)
	}
	err = r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_ttc), 0)
		FROM factures WHERE date_facture BETWEEN $1 AND $2`,
		from, to,
	).Scan(&out.FacturesCount, &out.MontantFacture)
	if err != nil {
		return nil, fmt.Errorf("compteurs factures de période: %w", err)
	}
	return &out, nil
}

// SumOutstanding retourne la créance totale: Σ (total_ttc − montant_paye) sur
// les factures non payées et non annulées.
func (r *StatsRepo) SumOutstanding(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_ttc - montant_paye), 0)
		FROM factures
		WHERE statut_paiement <> 'payé' AND statut <> 'annulée'`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("somme des créances: %w", err)
	}
	return total, nil
}

// GetSalesJournal retourne les factures de la période, ordonnées par date.
func (r *StatsRepo) GetSalesJournal(ctx context.Context, from, to time.Time) ([]repository.JournalLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT numero, date_facture, client_nom, sous_total, tva, total_ttc, montant_paye, devise
		FROM factures
		WHERE date_facture BETWEEN $1 AND $2
		ORDER BY date_facture, numero`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("journal des ventes: %w", err)
	}
	defer rows.Close()
	var lines []repository.JournalLine
	for rows.Next() {
		var l repository.JournalLine
		if err := rows.Scan(&l.Numero, &l.DateFacture, &l.ClientNom, &l.SousTotal,
			&l.TVA, &l.TotalTTC, &l.MontantPaye, &l.Devise); err != nil {
			return nil, fmt.Errorf("scan ligne journal: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// GetClientBalances retourne, par client ayant au moins une facture, le total
// facturé, le total encaissé et le solde.
func (r *StatsRepo) GetClientBalances(ctx context.Context) ([]repository.BalanceLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT client_id, client_nom, devise,
			COALESCE(SUM(total_ttc), 0),
			COALESCE(SUM(montant_paye), 0),
			COALESCE(SUM(total_ttc - montant_paye), 0)
		FROM factures
		WHERE statut <> 'annulée'
		GROUP BY client_id, client_nom, devise
		ORDER BY client_nom`,
	)
	if err != nil {
		return nil, fmt.Errorf("balance clients: %w", err)
	}
	defer rows.Close()
	var lines []repository.BalanceLine
	for rows.Next() {
		var l repository.BalanceLine
		if err := rows.Scan(&l.TiersID, &l.TiersNom, &l.Devise,
			&l.Facture, &l.Paye, &l.Solde); err != nil {
			return nil, fmt.Errorf("scan ligne balance: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *StatsRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
