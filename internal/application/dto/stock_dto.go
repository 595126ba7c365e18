package dto

import "github.com/shopspring/decimal"

// CreateStockItemRequest body pour POST /api/stock.
type CreateStockItemRequest struct {
	Ref         string          `json:"ref" validate:"required"`
	Designation string          `json:"designation" validate:"required"`
	Quantite    decimal.Decimal `json:"quantite_disponible"`
	SeuilAlerte decimal.Decimal `json:"seuil_alerte"`
	CoutMoyen   decimal.Decimal `json:"cout_moyen"`
	PrixVente   decimal.Decimal `json:"prix_vente"`
	Fournisseur string          `json:"fournisseur,omitempty"`
}

// UpdateStockItemRequest body pour PUT /api/stock/:id (liste blanche).
type UpdateStockItemRequest struct {
	Ref         *string          `json:"ref,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	Quantite    *decimal.Decimal `json:"quantite_disponible,omitempty"`
	SeuilAlerte *decimal.Decimal `json:"seuil_alerte,omitempty"`
	CoutMoyen   *decimal.Decimal `json:"cout_moyen,omitempty"`
	PrixVente   *decimal.Decimal `json:"prix_vente,omitempty"`
	Fournisseur *string          `json:"fournisseur,omitempty"`
}

// StockItemResponse article de stock dans les réponses.
type StockItemResponse struct {
	ID          string          `json:"article_id"`
	Ref         string          `json:"ref"`
	Designation string          `json:"designation"`
	Quantite    decimal.Decimal `json:"quantite_disponible"`
	SeuilAlerte decimal.Decimal `json:"seuil_alerte"`
	CoutMoyen   decimal.Decimal `json:"cout_moyen"`
	PrixVente   decimal.Decimal `json:"prix_vente"`
	Fournisseur string          `json:"fournisseur,omitempty"`
	EnAlerte    bool            `json:"en_alerte"`
}
