package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modes de paiement acceptés.
const (
	ModeEspeces     = "espèces"
	ModeCheque      = "chèque"
	ModeVirement    = "virement"
	ModeMobileMoney = "mobile_money"
)

// Type de document cible d'un paiement. Seules les factures sont réconciliées;
// les paiements fournisseurs (achats) sont hors périmètre.
const PaymentDocumentFacture = "facture"

// ModePaiementValide indique si le mode fait partie de l'ensemble accepté.
func ModePaiementValide(m string) bool {
	switch m {
	case ModeEspeces, ModeCheque, ModeVirement, ModeMobileMoney:
		return true
	}
	return false
}

// Payment représente un encaissement. Append-only: jamais modifié ni supprimé
// après création. Sa création est le seul déclencheur de la réconciliation
// du statut de paiement de la facture cible.
type Payment struct {
	ID                string
	TypeDocument      string // "facture"
	DocumentID        string
	Montant           decimal.Decimal // strictement positif
	Devise            string
	ModePaiement      string
	ReferencePaiement string // référence bancaire ou reçu, optionnelle
	DatePaiement      time.Time
	CreatedAt         time.Time
}
