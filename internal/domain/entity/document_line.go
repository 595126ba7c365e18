package entity

import "github.com/shopspring/decimal"

// DocumentLine représente une ligne d'article d'un devis ou d'une facture.
// Le total stocké doit toujours valoir Quantite × PrixUnitaire; il est recalculé
// à la création du document, jamais repris tel quel du client HTTP.
type DocumentLine struct {
	ID           string
	ParentID     string // devis ou facture propriétaire
	Item         int    // position ordonnée dans le document (1..n)
	Ref          string // référence article, optionnelle
	Designation  string
	Quantite     decimal.Decimal
	PrixUnitaire decimal.Decimal
	Total        decimal.Decimal
}

// ComputeTotal recalcule le total de la ligne (Quantite × PrixUnitaire).
func (l *DocumentLine) ComputeTotal() decimal.Decimal {
	return l.Quantite.Mul(l.PrixUnitaire)
}
