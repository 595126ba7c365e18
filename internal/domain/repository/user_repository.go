package repository

import "github.com/ecopumpafrik/gestion-api/internal/domain/entity"

// UserRepository définit le port de persistance pour User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
