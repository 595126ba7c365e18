package repository

import (
	"time"

	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
)

// PaymentRepository définit le port de persistance pour Paiement.
// Append-only: pas de Update ni de Delete.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
	ListByDocument(documentID string) ([]*entity.Payment, error)
	ListInPeriod(from, to time.Time) ([]*entity.Payment, error)
}
