package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem représente un article en stock (pompes, tuyauterie, pièces).
type StockItem struct {
	ID                 string
	Ref                string
	Designation        string
	QuantiteDisponible decimal.Decimal
	SeuilAlerte        decimal.Decimal
	CoutMoyen          decimal.Decimal
	PrixVente          decimal.Decimal
	Fournisseur        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EnAlerte indique si la quantité disponible est strictement sous le seuil.
func (s *StockItem) EnAlerte() bool {
	return s.QuantiteDisponible.LessThan(s.SeuilAlerte)
}

// StockItemUpdate liste blanche des champs modifiables d'un article de stock.
type StockItemUpdate struct {
	Ref                *string
	Designation        *string
	QuantiteDisponible *decimal.Decimal
	SeuilAlerte        *decimal.Decimal
	CoutMoyen          *decimal.Decimal
	PrixVente          *decimal.Decimal
	Fournisseur        *string
}
