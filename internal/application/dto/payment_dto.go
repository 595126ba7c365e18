package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest body pour POST /api/paiements.
type CreatePaymentRequest struct {
	TypeDocument      string          `json:"type_document" validate:"required,oneof=facture"`
	DocumentID        string          `json:"document_id" validate:"required"`
	Montant           decimal.Decimal `json:"montant"`
	Devise            string          `json:"devise" validate:"required,oneof=FCFA EUR"`
	ModePaiement      string          `json:"mode_paiement" validate:"required,oneof=espèces chèque virement mobile_money"`
	ReferencePaiement string          `json:"reference_paiement,omitempty"`
}

// PaymentResponse paiement enregistré.
type PaymentResponse struct {
	ID                string          `json:"paiement_id"`
	TypeDocument      string          `json:"type_document"`
	DocumentID        string          `json:"document_id"`
	Montant           decimal.Decimal `json:"montant"`
	Devise            string          `json:"devise"`
	ModePaiement      string          `json:"mode_paiement"`
	ReferencePaiement string          `json:"reference_paiement,omitempty"`
	DatePaiement      string          `json:"date_paiement"`
	// Statut de paiement de la facture après réconciliation; vide si la
	// facture cible n'existe pas (le paiement est tout de même enregistré).
	StatutFacture string `json:"statut_facture,omitempty"`
}
