package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/application/stock"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
)

// fakeStockRepo fake en mémoire du port de persistance.
type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{items: map[string]*entity.StockItem{}}
}

func (r *fakeStockRepo) Create(item *entity.StockItem) error {
	for _, existing := range r.items {
		if existing.Ref == item.Ref {
			return domain.ErrDuplicate
		}
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	return r.items[id], nil
}

func (r *fakeStockRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeStockRepo) ListAlerts() ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, item := range r.items {
		if item.EnAlerte() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) UpdateFields(id string, upd entity.StockItemUpdate) (*entity.StockItem, error) {
	item := r.items[id]
	if item == nil {
		return nil, nil
	}
	if upd.QuantiteDisponible != nil {
		item.QuantiteDisponible = *upd.QuantiteDisponible
	}
	if upd.SeuilAlerte != nil {
		item.SeuilAlerte = *upd.SeuilAlerte
	}
	if upd.Designation != nil {
		item.Designation = *upd.Designation
	}
	return item, nil
}

func (r *fakeStockRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func itemRequest(ref string, quantite, seuil int64) dto.CreateStockItemRequest {
	return dto.CreateStockItemRequest{
		Ref:         ref,
		Designation: "Pompe immergée 4 pouces",
		Quantite:    decimal.NewFromInt(quantite),
		SeuilAlerte: decimal.NewFromInt(seuil),
		CoutMoyen:   decimal.NewFromInt(85000),
		PrixVente:   decimal.NewFromInt(120000),
	}
}

func TestCreateItem_RejetteNegatifsEtChampsVides(t *testing.T) {
	uc := stock.NewUseCase(newFakeStockRepo())

	_, err := uc.CreateItem(context.Background(), itemRequest("", 5, 2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "référence vide rejetée")

	req := itemRequest("EP-4P", 5, 2)
	req.Quantite = decimal.NewFromInt(-1)
	_, err = uc.CreateItem(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantité négative rejetée")

	req = itemRequest("EP-4P", 5, 2)
	req.PrixVente = decimal.NewFromInt(-1)
	_, err = uc.CreateItem(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "prix négatif rejeté")
}

func TestEnAlerte_StrictementSousLeSeuil(t *testing.T) {
	repo := newFakeStockRepo()
	uc := stock.NewUseCase(repo)

	sous, err := uc.CreateItem(context.Background(), itemRequest("EP-A", 1, 2))
	require.NoError(t, err)
	assert.True(t, sous.EnAlerte)

	auSeuil, err := uc.CreateItem(context.Background(), itemRequest("EP-B", 2, 2))
	require.NoError(t, err)
	assert.False(t, auSeuil.EnAlerte, "quantité égale au seuil: pas d'alerte")

	alerts, err := uc.ListAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "EP-A", alerts[0].Ref)
}

func TestUpdateItem_RecalculeLAlerte(t *testing.T) {
	repo := newFakeStockRepo()
	uc := stock.NewUseCase(repo)

	created, err := uc.CreateItem(context.Background(), itemRequest("EP-C", 10, 3))
	require.NoError(t, err)
	require.False(t, created.EnAlerte)

	quantite := decimal.NewFromInt(2)
	updated, err := uc.UpdateItem(context.Background(), created.ID, dto.UpdateStockItemRequest{Quantite: &quantite})
	require.NoError(t, err)
	assert.True(t, updated.EnAlerte, "le passage sous le seuil déclenche l'alerte")

	negative := decimal.NewFromInt(-1)
	_, err = uc.UpdateItem(context.Background(), created.ID, dto.UpdateStockItemRequest{Quantite: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteItem_Inconnu(t *testing.T) {
	uc := stock.NewUseCase(newFakeStockRepo())

	err := uc.DeleteItem(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
