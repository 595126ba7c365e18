package entity

import "time"

// Supplier représente un fournisseur. Symétrique au Client, utilisé par les
// achats; au-delà de son existence et de sa fiche, le flux achats n'est pas géré ici.
type Supplier struct {
	ID                 string
	Nom                string
	NumeroCC           string
	Email              string
	Telephone          string
	Adresse            string
	Devise             string
	ConditionsPaiement string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SupplierUpdate liste blanche des champs modifiables d'un fournisseur.
type SupplierUpdate struct {
	Nom                *string
	NumeroCC           *string
	Email              *string
	Telephone          *string
	Adresse            *string
	Devise             *string
	ConditionsPaiement *string
}
