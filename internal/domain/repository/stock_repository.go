package repository

import "github.com/ecopumpafrik/gestion-api/internal/domain/entity"

// StockRepository définit le port de persistance pour les articles de stock.
type StockRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	List(limit, offset int) ([]*entity.StockItem, error)
	// ListAlerts retourne les articles dont la quantité disponible est
	// strictement sous le seuil d'alerte.
	ListAlerts() ([]*entity.StockItem, error)
	UpdateFields(id string, upd entity.StockItemUpdate) (*entity.StockItem, error)
	Delete(id string) error
}
