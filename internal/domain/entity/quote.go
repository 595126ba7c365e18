package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un devis. "converti" est terminal et irréversible: il implique
// qu'exactement une facture référence ce devis via son DevisID.
const (
	QuoteStatusBrouillon = "brouillon"
	QuoteStatusEnvoye    = "envoyé"
	QuoteStatusAccepte   = "accepté"
	QuoteStatusRefuse    = "refusé"
	QuoteStatusConverti  = "converti"
)

// Quote représente un devis: offre chiffrée non contractuelle, convertible en facture.
type Quote struct {
	ID                 string
	Numero             string // DEV/CLIENT/DDMMYYYY/NNN, unique dans tout le système
	DateDevis          time.Time
	ClientID           string
	ClientNom          string // dénormalisé au moment de la création
	Lines              []DocumentLine
	SousTotal          decimal.Decimal
	TVA                decimal.Decimal
	TotalTTC           decimal.Decimal
	NetAPayer          decimal.Decimal
	Devise             string // copiée du client à la création, jamais re-dérivée
	DelaiLivraison     string
	ConditionsPaiement string
	Statut             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// quoteTransitions donne les statuts atteignables depuis chaque statut.
// "converti" n'apparaît jamais comme cible: seul le convertisseur devis→facture
// peut poser ce statut.
var quoteTransitions = map[string][]string{
	QuoteStatusBrouillon: {QuoteStatusEnvoye, QuoteStatusAccepte, QuoteStatusRefuse},
	QuoteStatusEnvoye:    {QuoteStatusAccepte, QuoteStatusRefuse},
	QuoteStatusAccepte:   {QuoteStatusRefuse},
	QuoteStatusRefuse:    {},
	QuoteStatusConverti:  {},
}

// CanTransitionTo indique si le devis peut passer au statut cible par une
// transition explicite (hors conversion).
func (q *Quote) CanTransitionTo(target string) bool {
	for _, s := range quoteTransitions[q.Statut] {
		if s == target {
			return true
		}
	}
	return false
}
