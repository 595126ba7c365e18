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

// ClientUseCase contient la logique métier des clients.
type ClientUseCase struct {
	clients  repository.ClientRepository
	quotes   repository.QuoteRepository
	invoices repository.InvoiceRepository
	now      func() time.Time
}

func NewClientUseCase(clients repository.ClientRepository, quotes repository.QuoteRepository, invoices repository.InvoiceRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, quotes: quotes, invoices: invoices, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *ClientUseCase) WithClock(now func() time.Time) *ClientUseCase {
	uc.now = now
	return uc
}

// CreateClient crée un client. La devise par défaut est le FCFA et le type
// par défaut "standard".
func (uc *ClientUseCase) CreateClient(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
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
	typeClient := in.TypeClient
	if typeClient == "" {
		typeClient = entity.ClientTypeStandard
	}

	now := uc.now()
	client := &entity.Client{
		ID:                 uuid.New().String(),
		Nom:                in.Nom,
		NumeroCC:           in.NumeroCC,
		NumeroRC:           in.NumeroRC,
		NIF:                in.NIF,
		Email:              in.Email,
		Telephone:          in.Telephone,
		Adresse:            in.Adresse,
		Devise:             devise,
		TypeClient:         typeClient,
		ConditionsPaiement: in.ConditionsPaiement,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// GetClient retourne un client par id.
func (uc *ClientUseCase) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// ListClients liste les clients paginés.
func (uc *ClientUseCase) ListClients(ctx context.Context, limit, offset int) ([]*dto.ClientResponse, error) {
	list, err := uc.clients.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clientToResponse(c))
	}
	return out, nil
}

// UpdateClient applique une mise à jour partielle. Seuls les champs présents
// dans le body sont modifiés; la devise, si fournie, doit être valide. Les
// documents déjà émis conservent la devise figée à leur création.
func (uc *ClientUseCase) UpdateClient(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Devise != nil && !entity.DeviseValide(*in.Devise) {
		return nil, domain.ErrInvalidInput
	}
	if in.Nom != nil && *in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	upd := entity.ClientUpdate{
		Nom:                in.Nom,
		NumeroCC:           in.NumeroCC,
		NumeroRC:           in.NumeroRC,
		NIF:                in.NIF,
		Email:              in.Email,
		Telephone:          in.Telephone,
		Adresse:            in.Adresse,
		Devise:             in.Devise,
		TypeClient:         in.TypeClient,
		ConditionsPaiement: in.ConditionsPaiement,
	}
	client, err := uc.clients.UpdateFields(id, upd)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// DeleteClient supprime un client s'il n'est référencé par aucun document.
// Un client porteur de devis ou de factures ne peut pas être supprimé
// (domain.ErrConflict): les documents émis doivent rester rattachés.
func (uc *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	nDevis, err := uc.quotes.CountByClient(id)
	if err != nil {
		return err
	}
	if nDevis > 0 {
		return domain.ErrConflict
	}
	nFactures, err := uc.invoices.CountByClient(id)
	if err != nil {
		return err
	}
	if nFactures > 0 {
		return domain.ErrConflict
	}
	return uc.clients.Delete(id)
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                 c.ID,
		Nom:                c.Nom,
		NumeroCC:           c.NumeroCC,
		NumeroRC:           c.NumeroRC,
		NIF:                c.NIF,
		Email:              c.Email,
		Telephone:          c.Telephone,
		Adresse:            c.Adresse,
		Devise:             c.Devise,
		TypeClient:         c.TypeClient,
		ConditionsPaiement: c.ConditionsPaiement,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
	}
}
