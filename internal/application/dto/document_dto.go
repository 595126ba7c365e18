package dto

import "github.com/shopspring/decimal"

// LineRequest ligne d'article d'un devis ou d'une facture. Le total de ligne
// n'est pas accepté du client: il est recalculé (quantité × prix unitaire).
type LineRequest struct {
	Ref          string          `json:"ref,omitempty"`
	Designation  string          `json:"designation" validate:"required"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
}

// LineResponse ligne d'article dans les réponses.
type LineResponse struct {
	Item         int             `json:"item"`
	Ref          string          `json:"ref,omitempty"`
	Designation  string          `json:"designation"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Total        decimal.Decimal `json:"total"`
}

// CreateQuoteRequest body pour POST /api/devis. La devise est copiée du client;
// le sous-total et le total TTC sont recalculés à partir des lignes.
type CreateQuoteRequest struct {
	ClientID           string          `json:"client_id" validate:"required"`
	Articles           []LineRequest   `json:"articles" validate:"required,min=1,dive"`
	TVA                decimal.Decimal `json:"tva"`
	DelaiLivraison     string          `json:"delai_livraison,omitempty"`
	ConditionsPaiement string          `json:"conditions_paiement,omitempty"`
}

// UpdateQuoteStatusRequest body pour PATCH /api/devis/:id/statut.
type UpdateQuoteStatusRequest struct {
	Statut string `json:"statut" validate:"required,oneof=brouillon envoyé accepté refusé"`
}

// QuoteResponse devis complet dans les réponses.
type QuoteResponse struct {
	ID                 string          `json:"devis_id"`
	Numero             string          `json:"numero_devis"`
	DateDevis          string          `json:"date_devis"`
	ClientID           string          `json:"client_id"`
	ClientNom          string          `json:"client_nom"`
	Articles           []LineResponse  `json:"articles"`
	SousTotal          decimal.Decimal `json:"sous_total"`
	TVA                decimal.Decimal `json:"tva"`
	TotalTTC           decimal.Decimal `json:"total_ttc"`
	NetAPayer          decimal.Decimal `json:"net_a_payer"`
	Devise             string          `json:"devise"`
	DelaiLivraison     string          `json:"delai_livraison,omitempty"`
	ConditionsPaiement string          `json:"conditions_paiement,omitempty"`
	Statut             string          `json:"statut"`
	CreatedAt          string          `json:"created_at"`
}

// UpdateInvoiceStatusRequest body pour PATCH /api/factures/:id/statut.
// "payée" n'est pas accepté: ce statut est dérivé par la réconciliation.
type UpdateInvoiceStatusRequest struct {
	Statut string `json:"statut" validate:"required,oneof=envoyée annulée"`
}

// CreateInvoiceRequest body pour POST /api/factures (facture directe, sans devis).
type CreateInvoiceRequest struct {
	ClientID           string          `json:"client_id" validate:"required"`
	Articles           []LineRequest   `json:"articles" validate:"required,min=1,dive"`
	TVA                decimal.Decimal `json:"tva"`
	DelaiLivraison     string          `json:"delai_livraison,omitempty"`
	ConditionsPaiement string          `json:"conditions_paiement,omitempty"`
}

// InvoiceResponse facture complète dans les réponses.
type InvoiceResponse struct {
	ID                 string          `json:"facture_id"`
	Numero             string          `json:"numero_facture"`
	DateFacture        string          `json:"date_facture"`
	DevisID            string          `json:"devis_id,omitempty"`
	ClientID           string          `json:"client_id"`
	ClientNom          string          `json:"client_nom"`
	Articles           []LineResponse  `json:"articles"`
	SousTotal          decimal.Decimal `json:"sous_total"`
	TVA                decimal.Decimal `json:"tva"`
	TotalTTC           decimal.Decimal `json:"total_ttc"`
	NetAPayer          decimal.Decimal `json:"net_a_payer"`
	Devise             string          `json:"devise"`
	MontantPaye        decimal.Decimal `json:"montant_paye"`
	StatutPaiement     string          `json:"statut_paiement"`
	Statut             string          `json:"statut"`
	DelaiLivraison     string          `json:"delai_livraison,omitempty"`
	ConditionsPaiement string          `json:"conditions_paiement,omitempty"`
	CreatedAt          string          `json:"created_at"`
}
