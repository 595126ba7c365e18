package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// SupplierUseCase contient la logique métier des fournisseurs.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	now       func() time.Time
}

func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *SupplierUseCase) WithClock(now func() time.Time) *SupplierUseCase {
	uc.now = now
	return uc
}

// CreateSupplier crée un fournisseur. Devise par défaut FCFA.
func (uc *SupplierUseCase) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	devise := in.Devise
	if devise == "" {
		devise = entity.DeviseFCFA
	}
	if !entity.DeviseValide(devise) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	supplier := &entity.Supplier{
		ID:                 uuid.New().String(),
		Nom:                in.Nom,
		NumeroCC:           in.NumeroCC,
		Email:              in.Email,
		Telephone:          in.Telephone,
		Adresse:            in.Adresse,
		Devise:             devise,
		ConditionsPaiement: in.ConditionsPaiement,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.suppliers.Create(supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

// GetSupplier retourne un fournisseur par id.
func (uc *SupplierUseCase) GetSupplier(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return supplierToResponse(s), nil
}

// ListSuppliers liste les fournisseurs paginés.
func (uc *SupplierUseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]*dto.SupplierResponse, error) {
	list, err := uc.suppliers.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, supplierToResponse(s))
	}
	return out, nil
}

// UpdateSupplier applique une mise à jour partielle.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Devise != nil && !entity.DeviseValide(*in.Devise) {
		return nil, domain.ErrInvalidInput
	}
	if in.Nom != nil && *in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	upd := entity.SupplierUpdate{
		Nom:                in.Nom,
		NumeroCC:           in.NumeroCC,
		Email:              in.Email,
		Telephone:          in.Telephone,
		Adresse:            in.Adresse,
		Devise:             in.Devise,
		ConditionsPaiement: in.ConditionsPaiement,
	}
	s, err := uc.suppliers.UpdateFields(id, upd)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return supplierToResponse(s), nil
}

// DeleteSupplier supprime un fournisseur. Les achats n'étant pas gérés, il
// n'y a pas de garde de référencement équivalente à celle des clients.
func (uc *SupplierUseCase) DeleteSupplier(ctx context.Context, id string) error {
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.suppliers.Delete(id)
}

func supplierToResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:                 s.ID,
		Nom:                s.Nom,
		NumeroCC:           s.NumeroCC,
		Email:              s.Email,
		Telephone:          s.Telephone,
		Adresse:            s.Adresse,
		Devise:             s.Devise,
		ConditionsPaiement: s.ConditionsPaiement,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
	}
}
