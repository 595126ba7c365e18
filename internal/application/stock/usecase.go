// Package stock contient les cas d'usage de gestion des articles en stock.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// UseCase contient la logique métier des articles de stock.
type UseCase struct {
	items repository.StockRepository
	now   func() time.Time
}

func NewUseCase(items repository.StockRepository) *UseCase {
	return &UseCase{items: items, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// CreateItem crée un article. Les quantités et montants négatifs sont rejetés.
func (uc *UseCase) CreateItem(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Ref == "" || in.Designation == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantite.IsNegative() || in.SeuilAlerte.IsNegative() ||
		in.CoutMoyen.IsNegative() || in.PrixVente.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	item := &entity.StockItem{
		ID:                 uuid.New().String(),
		Ref:                in.Ref,
		Designation:        in.Designation,
		QuantiteDisponible: in.Quantite,
		SeuilAlerte:        in.SeuilAlerte,
		CoutMoyen:          in.CoutMoyen,
		PrixVente:          in.PrixVente,
		Fournisseur:        in.Fournisseur,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// GetItem retourne un article par id.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*dto.StockItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return itemToResponse(item), nil
}

// ListItems liste les articles paginés.
func (uc *UseCase) ListItems(ctx context.Context, limit, offset int) ([]*dto.StockItemResponse, error) {
	list, err := uc.items.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, itemToResponse(item))
	}
	return out, nil
}

// ListAlerts liste les articles sous leur seuil d'alerte.
func (uc *UseCase) ListAlerts(ctx context.Context) ([]*dto.StockItemResponse, error) {
	list, err := uc.items.ListAlerts()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, itemToResponse(item))
	}
	return out, nil
}

// UpdateItem applique une mise à jour partielle.
func (uc *UseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Quantite != nil && in.Quantite.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.SeuilAlerte != nil && in.SeuilAlerte.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Ref != nil && *in.Ref == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Designation != nil && *in.Designation == "" {
		return nil, domain.ErrInvalidInput
	}
	upd := entity.StockItemUpdate{
		Ref:                in.Ref,
		Designation:        in.Designation,
		QuantiteDisponible: in.Quantite,
		SeuilAlerte:        in.SeuilAlerte,
		CoutMoyen:          in.CoutMoyen,
		PrixVente:          in.PrixVente,
		Fournisseur:        in.Fournisseur,
	}
	item, err := uc.items.UpdateFields(id, upd)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return itemToResponse(item), nil
}

// DeleteItem supprime un article.
func (uc *UseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.items.Delete(id)
}

func itemToResponse(item *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:          item.ID,
		Ref:         item.Ref,
		Designation: item.Designation,
		Quantite:    item.QuantiteDisponible,
		SeuilAlerte: item.SeuilAlerte,
		CoutMoyen:   item.CoutMoyen,
		PrixVente:   item.PrixVente,
		Fournisseur: item.Fournisseur,
		EnAlerte:    item.EnAlerte(),
	}
}
