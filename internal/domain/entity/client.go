package entity

import "time"

// Devises acceptées (ensemble fermé).
const (
	DeviseFCFA = "FCFA"
	DeviseEUR  = "EUR"
)

// Types de client.
const (
	ClientTypeStandard    = "standard"
	ClientTypeRevendeur   = "revendeur"
	ClientTypeIndustriel  = "industriel"
	ClientTypeInstitution = "institution"
)

// DeviseValide indique si la devise fait partie de l'ensemble fermé FCFA/EUR.
func DeviseValide(d string) bool {
	return d == DeviseFCFA || d == DeviseEUR
}

// Client représente un client de la société (facturation).
type Client struct {
	ID                 string
	Nom                string
	NumeroCC           string // numéro du registre du commerce (CC)
	NumeroRC           string
	NIF                string // numéro d'identification fiscale
	Email              string
	Telephone          string
	Adresse            string
	Devise             string // FCFA ou EUR, figée sur les documents au moment de leur création
	TypeClient         string
	ConditionsPaiement string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ClientUpdate liste blanche des champs modifiables d'un client.
// Un champ nil est laissé tel quel. ID et CreatedAt ne sont pas modifiables.
type ClientUpdate struct {
	Nom                *string
	NumeroCC           *string
	NumeroRC           *string
	NIF                *string
	Email              *string
	Telephone          *string
	Adresse            *string
	Devise             *string
	TypeClient         *string
	ConditionsPaiement *string
}
