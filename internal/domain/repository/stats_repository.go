package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodCounters compteurs et sommes d'une fenêtre temporelle. Produits par la
// DB en un passage sur les collections concernées; aucune projection pré-agrégée.
type PeriodCounters struct {
	DevisCount     int64
	FacturesCount  int64
	MontantDevis   decimal.Decimal // Σ total_ttc des devis de la période
	MontantFacture decimal.Decimal // Σ total_ttc des factures de la période
}

// JournalLine ligne brute du journal des ventes (une facture).
type JournalLine struct {
	Numero      string
	DateFacture time.Time
	ClientNom   string
	SousTotal   decimal.Decimal
	TVA         decimal.Decimal
	TotalTTC    decimal.Decimal
	MontantPaye decimal.Decimal
	Devise      string
}

// BalanceLine solde d'un tiers: facturé, encaissé, restant dû.
type BalanceLine struct {
	TiersID     string
	TiersNom    string
	Facture     decimal.Decimal
	Paye        decimal.Decimal
	Solde       decimal.Decimal
	Devise      string
}

// StatsRepository définit les requêtes de lecture pour le tableau de bord et
// les rapports. Les implémentations sont read-only; les sommes utilisent
// COALESCE pour retourner zéro quand la période est vide.
type StatsRepository interface {
	CountClients(ctx context.Context) (int64, error)
	CountClientsByDevise(ctx context.Context, devise string) (int64, error)
	CountSuppliers(ctx context.Context) (int64, error)
	CountQuotes(ctx context.Context) (int64, error)
	CountInvoices(ctx context.Context) (int64, error)
	CountStockAlerts(ctx context.Context) (int64, error)

	// GetPeriodCounters calcule compteurs et sommes des devis/factures dont la
	// date d'émission tombe dans [from, to].
	GetPeriodCounters(ctx context.Context, from, to time.Time) (*PeriodCounters, error)

	// SumOutstanding retourne la créance totale: Σ (total_ttc − montant_paye)
	// sur les factures dont le statut de paiement n'est pas "payé".
	SumOutstanding(ctx context.Context) (decimal.Decimal, error)

	// GetSalesJournal retourne les factures de la période, ordonnées par date,
	// pour le rapport journal des ventes.
	GetSalesJournal(ctx context.Context, from, to time.Time) ([]JournalLine, error)

	// GetClientBalances retourne, par client ayant au moins une facture, le
	// total facturé, le total encaissé et le solde.
	GetClientBalances(ctx context.Context) ([]BalanceLine, error)
}
