package repository

import "github.com/ecopumpafrik/gestion-api/internal/domain/entity"

// ClientRepository définit le port de persistance pour Client.
// Les entités sont identifiées par leur id de domaine (UUID), jamais par un
// identifiant interne du stockage.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	CountByDevise(devise string) (int64, error)
	// UpdateFields applique uniquement les champs non nil de la liste blanche
	// (last-write-wins). Les champs absents de ClientUpdate sont immuables.
	UpdateFields(id string, upd entity.ClientUpdate) (*entity.Client, error)
	Delete(id string) error
}
