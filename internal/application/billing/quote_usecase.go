package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/numbering"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// QuoteUseCase cas d'usage des devis: création avec numérotation, lecture,
// transitions de statut.
type QuoteUseCase struct {
	clients repository.ClientRepository
	quotes  repository.QuoteRepository
	tx      DocumentTxRunner
	now     func() time.Time
}

// NewQuoteUseCase construit le cas d'usage.
func NewQuoteUseCase(clients repository.ClientRepository, quotes repository.QuoteRepository, tx DocumentTxRunner) *QuoteUseCase {
	return &QuoteUseCase{clients: clients, quotes: quotes, tx: tx, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *QuoteUseCase) WithClock(now func() time.Time) *QuoteUseCase {
	uc.now = now
	return uc
}

// buildLines valide les lignes de la requête et recalcule chaque total.
// Quantités et prix négatifs sont rejetés; le total stocké vaut toujours
// quantité × prix unitaire.
func buildLines(parentID string, in []dto.LineRequest) ([]entity.DocumentLine, decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}
	lines := make([]entity.DocumentLine, 0, len(in))
	sousTotal := decimal.Zero
	for i, l := range in {
		if l.Designation == "" {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		if l.Quantite.IsNegative() || l.PrixUnitaire.IsNegative() {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		line := entity.DocumentLine{
			ID:           uuid.New().String(),
			ParentID:     parentID,
			Item:         i + 1,
			Ref:          l.Ref,
			Designation:  l.Designation,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
		}
		line.Total = line.ComputeTotal()
		sousTotal = sousTotal.Add(line.Total)
		lines = append(lines, line)
	}
	return lines, sousTotal, nil
}

// CreateQuote crée un devis pour un client existant. La devise est copiée du
// client au moment de la création; le numéro DEV/CLIENT/DDMMYYYY/NNN est
// alloué en comptant les devis du compartiment, avec réessai borné si la
// contrainte d'unicité détecte une allocation concurrente.
func (uc *QuoteUseCase) CreateQuote(ctx context.Context, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.TVA.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	quote := &entity.Quote{
		ID:                 uuid.New().String(),
		DateDevis:          now,
		ClientID:           client.ID,
		ClientNom:          client.Nom,
		TVA:                in.TVA,
		Devise:             client.Devise,
		DelaiLivraison:     in.DelaiLivraison,
		ConditionsPaiement: in.ConditionsPaiement,
		Statut:             entity.QuoteStatusBrouillon,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	lines, sousTotal, err := buildLines(quote.ID, in.Articles)
	if err != nil {
		return nil, err
	}
	quote.Lines = lines
	quote.SousTotal = sousTotal
	quote.TotalTTC = sousTotal.Add(in.TVA)
	quote.NetAPayer = quote.TotalTTC

	if in.ConditionsPaiement == "" {
		quote.ConditionsPaiement = client.ConditionsPaiement
	}

	err = uc.createWithNumber(ctx, quote)
	if err != nil {
		return nil, err
	}
	return quoteToResponse(quote), nil
}

// createWithNumber alloue le numéro et persiste le devis dans une transaction,
// en réessayant sur ErrDuplicate (course d'allocation).
func (uc *QuoteUseCase) createWithNumber(ctx context.Context, quote *entity.Quote) error {
	var err error
	for attempt := 0; attempt < allocationRetries; attempt++ {
		err = uc.tx.RunDocuments(ctx, func(quotes repository.QuoteRepository, _ repository.InvoiceRepository) error {
			numero, errNum := NextNumber(quotes, numbering.PrefixDevis, quote.ClientNom, quote.DateDevis)
			if errNum != nil {
				return errNum
			}
			quote.Numero = numero
			return quotes.Create(quote)
		})
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}
	return err
}

// GetQuote retourne un devis complet par id.
func (uc *QuoteUseCase) GetQuote(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return quoteToResponse(quote), nil
}

// ListQuotes liste les devis, les plus récents d'abord.
func (uc *QuoteUseCase) ListQuotes(ctx context.Context, limit, offset int) ([]*dto.QuoteResponse, error) {
	list, err := uc.quotes.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, quoteToResponse(q))
	}
	return out, nil
}

// UpdateStatus applique une transition de statut explicite. "converti" n'est
// jamais accepté par ce chemin: seul le convertisseur devis→facture le pose.
func (uc *QuoteUseCase) UpdateStatus(ctx context.Context, id, statut string) (*dto.QuoteResponse, error) {
	if statut == entity.QuoteStatusConverti {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !quote.CanTransitionTo(statut) {
		return nil, domain.ErrConflict
	}
	if err := uc.quotes.UpdateStatus(id, statut); err != nil {
		return nil, err
	}
	quote.Statut = statut
	return quoteToResponse(quote), nil
}

func quoteToResponse(q *entity.Quote) *dto.QuoteResponse {
	resp := &dto.QuoteResponse{
		ID:                 q.ID,
		Numero:             q.Numero,
		DateDevis:          q.DateDevis.Format("2006-01-02"),
		ClientID:           q.ClientID,
		ClientNom:          q.ClientNom,
		Articles:           linesToResponse(q.Lines),
		SousTotal:          q.SousTotal,
		TVA:                q.TVA,
		TotalTTC:           q.TotalTTC,
		NetAPayer:          q.NetAPayer,
		Devise:             q.Devise,
		DelaiLivraison:     q.DelaiLivraison,
		ConditionsPaiement: q.ConditionsPaiement,
		Statut:             q.Statut,
		CreatedAt:          q.CreatedAt.Format(time.RFC3339),
	}
	return resp
}

func linesToResponse(lines []entity.DocumentLine) []dto.LineResponse {
	out := make([]dto.LineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.LineResponse{
			Item:         l.Item,
			Ref:          l.Ref,
			Designation:  l.Designation,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
			Total:        l.Total,
		})
	}
	return out
}
