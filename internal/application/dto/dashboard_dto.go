package dto

import "github.com/shopspring/decimal"

// DashboardStats réponse de GET /api/dashboard/stats. Calculée à la demande
// par balayage des collections, sans projection pré-agrégée; période vide =
// tous les montants à zéro.
type DashboardStats struct {
	TotalClients      int64 `json:"total_clients"`
	TotalFournisseurs int64 `json:"total_fournisseurs"`
	TotalDevis        int64 `json:"total_devis"`
	TotalFactures     int64 `json:"total_factures"`

	// Compteurs de la période (par défaut: mois en cours jusqu'à aujourd'hui)
	DevisPeriode    int64 `json:"devis_ce_mois"`
	FacturesPeriode int64 `json:"factures_ce_mois"`

	// Clients segmentés par devise
	ClientsFCFA int64 `json:"clients_fcfa"`
	ClientsEUR  int64 `json:"clients_eur"`

	// Sommes de la période
	MontantDevisPeriode    decimal.Decimal `json:"montant_devis_mois"`
	MontantFacturesPeriode decimal.Decimal `json:"montant_factures_mois"`

	// Créance totale: Σ (total_ttc − montant_payé) des factures non payées
	TotalCreances decimal.Decimal `json:"total_creances"`

	AlertesStock int64 `json:"alertes_stock"`

	PeriodeDu string `json:"periode_du"`
	PeriodeAu string `json:"periode_au"`
}
