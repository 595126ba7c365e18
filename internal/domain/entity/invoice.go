package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts de document d'une facture.
const (
	InvoiceStatusEmise   = "émise"
	InvoiceStatusEnvoyee = "envoyée"
	InvoiceStatusPayee   = "payée"
	InvoiceStatusAnnulee = "annulée"
)

// Statuts de paiement d'une facture. Valeur dérivée: seule la réconciliation
// des paiements peut la modifier, jamais une mise à jour générique.
const (
	PaymentStatusImpaye  = "impayé"
	PaymentStatusPartiel = "partiel"
	PaymentStatusPaye    = "payé"
)

// Invoice représente une facture: document contractuel qui suit le montant dû
// et le montant encaissé.
type Invoice struct {
	ID                 string
	Numero             string // FACT/CLIENT/DDMMYYYY/NNN, unique dans tout le système
	DateFacture        time.Time
	DevisID            string // devis d'origine, vide pour une facture directe
	ClientID           string
	ClientNom          string
	Lines              []DocumentLine
	SousTotal          decimal.Decimal
	TVA                decimal.Decimal
	TotalTTC           decimal.Decimal
	NetAPayer          decimal.Decimal
	Devise             string
	MontantPaye        decimal.Decimal // monotone croissant, modifié uniquement par la réconciliation
	StatutPaiement     string          // impayé | partiel | payé
	Statut             string          // émise | envoyée | payée | annulée
	DelaiLivraison     string
	ConditionsPaiement string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Outstanding retourne le solde restant dû (TotalTTC − MontantPaye).
func (i *Invoice) Outstanding() decimal.Decimal {
	return i.TotalTTC.Sub(i.MontantPaye)
}

// DerivePaymentStatus calcule le statut de paiement pour un montant payé donné.
// Zéro paiement = impayé; sinon partiel ou payé selon le total TTC.
func DerivePaymentStatus(montantPaye, totalTTC decimal.Decimal) string {
	if montantPaye.IsZero() {
		return PaymentStatusImpaye
	}
	if montantPaye.GreaterThanOrEqual(totalTTC) {
		return PaymentStatusPaye
	}
	return PaymentStatusPartiel
}
