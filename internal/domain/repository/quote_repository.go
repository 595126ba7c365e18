package repository

import "github.com/ecopumpafrik/gestion-api/internal/domain/entity"

// QuoteRepository définit le port de persistance pour Devis.
//
// Create persiste l'en-tête et les lignes; il retourne domain.ErrDuplicate si
// le numéro de document est déjà pris (contrainte d'unicité), ce qui permet à
// l'allocateur de numéros de réessayer.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	List(limit, offset int) ([]*entity.Quote, error)
	// CountByNumberPrefix compte les devis dont le numéro commence par le motif
	// littéral du compartiment (numbering.BucketPrefix). Non atomique avec
	// Create: la contrainte d'unicité couvre la course.
	CountByNumberPrefix(prefix string) (int64, error)
	CountByClient(clientID string) (int64, error)
	// UpdateStatus pose le nouveau statut. N'effectue aucune validation de
	// transition: c'est la responsabilité du cas d'usage.
	UpdateStatus(id, statut string) error
}
