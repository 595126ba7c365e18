package repository

import "github.com/ecopumpafrik/gestion-api/internal/domain/entity"

// SupplierRepository définit le port de persistance pour Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	UpdateFields(id string, upd entity.SupplierUpdate) (*entity.Supplier, error)
	Delete(id string) error
}
