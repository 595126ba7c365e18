package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/numbering"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// ConvertQuoteUseCase convertit un devis en facture: copie intégrale du
// contenu commercial, nouveau numéro FACT, puis marquage du devis "converti".
//
// Les deux écritures (création de la facture, marquage du devis) sont
// volontairement séparées: pas de transaction inter-entités. Un arrêt entre
// les deux laisse un devis non marqué avec une facture qui le référence —
// création au-moins-une-fois, marquage au-mieux.
type ConvertQuoteUseCase struct {
	quotes   repository.QuoteRepository
	invoices repository.InvoiceRepository
	tx       DocumentTxRunner
	now      func() time.Time
}

// NewConvertQuoteUseCase construit le cas d'usage.
func NewConvertQuoteUseCase(quotes repository.QuoteRepository, invoices repository.InvoiceRepository, tx DocumentTxRunner) *ConvertQuoteUseCase {
	return &ConvertQuoteUseCase{quotes: quotes, invoices: invoices, tx: tx, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *ConvertQuoteUseCase) WithClock(now func() time.Time) *ConvertQuoteUseCase {
	uc.now = now
	return uc
}

// Convert transforme le devis en facture. Un devis déjà "converti" est rejeté
// avec ErrConflict: reconvertir allouerait une seconde facture à partir de
// données périmées.
func (uc *ConvertQuoteUseCase) Convert(ctx context.Context, devisID string) (*dto.InvoiceResponse, error) {
	quote, err := uc.quotes.GetByID(devisID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Statut == entity.QuoteStatusConverti {
		return nil, domain.ErrConflict
	}

	now := uc.now()
	invoice := &entity.Invoice{
		ID:                 uuid.New().String(),
		DateFacture:        now,
		DevisID:            quote.ID,
		ClientID:           quote.ClientID,
		ClientNom:          quote.ClientNom,
		SousTotal:          quote.SousTotal,
		TVA:                quote.TVA,
		TotalTTC:           quote.TotalTTC,
		NetAPayer:          quote.NetAPayer,
		Devise:             quote.Devise,
		MontantPaye:        decimal.Zero,
		StatutPaiement:     entity.PaymentStatusImpaye,
		Statut:             entity.InvoiceStatusEmise,
		DelaiLivraison:     quote.DelaiLivraison,
		ConditionsPaiement: quote.ConditionsPaiement,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	invoice.Lines = copyLines(quote.Lines, invoice.ID)

	if err := uc.createWithNumber(ctx, invoice); err != nil {
		return nil, err
	}

	// Marquage au-mieux: la facture existe déjà, on ne la retire pas si le
	// marquage échoue. Le devis restera reconvertible jusqu'à correction —
	// trace en warn pour l'exploitation.
	if err := uc.quotes.UpdateStatus(quote.ID, entity.QuoteStatusConverti); err != nil {
		log.Warn().Err(err).
			Str("devis_id", quote.ID).
			Str("facture_id", invoice.ID).
			Msg("conversion: facture créée mais devis non marqué converti")
	}

	return invoiceToResponse(invoice), nil
}

func (uc *ConvertQuoteUseCase) createWithNumber(ctx context.Context, invoice *entity.Invoice) error {
	var err error
	for attempt := 0; attempt < allocationRetries; attempt++ {
		err = uc.tx.RunDocuments(ctx, func(_ repository.QuoteRepository, invoices repository.InvoiceRepository) error {
			numero, errNum := NextNumber(invoices, numbering.PrefixFacture, invoice.ClientNom, invoice.DateFacture)
			if errNum != nil {
				return errNum
			}
			invoice.Numero = numero
			return invoices.Create(invoice)
		})
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}
	return err
}

// copyLines duplique les lignes pour le nouveau document (nouveaux ids de
// ligne, même contenu commercial).
func copyLines(lines []entity.DocumentLine, parentID string) []entity.DocumentLine {
	out := make([]entity.DocumentLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.DocumentLine{
			ID:           uuid.New().String(),
			ParentID:     parentID,
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
