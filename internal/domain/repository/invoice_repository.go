package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
)

// InvoiceRepository définit le port de persistance pour Facture.
type InvoiceRepository interface {
	// Create persiste l'en-tête et les lignes. Retourne domain.ErrDuplicate si
	// le numéro est déjà pris.
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	CountByNumberPrefix(prefix string) (int64, error)
	CountByClient(clientID string) (int64, error)
	CountByQuote(devisID string) (int64, error)
	UpdateStatus(id, statut string) error
	// RegisterPayment incrémente montant_paye de amount et dérive le statut de
	// paiement dans la même instruction SQL (pas de lecture-modification-écriture
	// côté Go, donc pas de mise à jour perdue entre paiements concurrents).
	// Retourne la facture mise à jour, ou nil si elle n'existe pas.
	RegisterPayment(id string, amount decimal.Decimal, at time.Time) (*entity.Invoice, error)
}
