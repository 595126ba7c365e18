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

// InvoiceUseCase cas d'usage des factures directes (sans devis d'origine) et
// de leur consultation. Le montant payé et le statut de paiement ne sont
// jamais touchés ici: ils appartiennent au réconciliateur de paiements.
type InvoiceUseCase struct {
	clients  repository.ClientRepository
	invoices repository.InvoiceRepository
	tx       DocumentTxRunner
	now      func() time.Time
}

// NewInvoiceUseCase construit le cas d'usage.
func NewInvoiceUseCase(clients repository.ClientRepository, invoices repository.InvoiceRepository, tx DocumentTxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{clients: clients, invoices: invoices, tx: tx, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// CreateInvoice crée une facture directe pour un client existant. Mêmes règles
// de lignes et de numérotation que les devis, préfixe FACT.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
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
	invoice := &entity.Invoice{
		ID:                 uuid.New().String(),
		DateFacture:        now,
		ClientID:           client.ID,
		ClientNom:          client.Nom,
		TVA:                in.TVA,
		Devise:             client.Devise,
		MontantPaye:        decimal.Zero,
		StatutPaiement:     entity.PaymentStatusImpaye,
		Statut:             entity.InvoiceStatusEmise,
		DelaiLivraison:     in.DelaiLivraison,
		ConditionsPaiement: in.ConditionsPaiement,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	lines, sousTotal, err := buildLines(invoice.ID, in.Articles)
	if err != nil {
		return nil, err
	}
	invoice.Lines = lines
	invoice.SousTotal = sousTotal
	invoice.TotalTTC = sousTotal.Add(in.TVA)
	invoice.NetAPayer = invoice.TotalTTC
	if in.ConditionsPaiement == "" {
		invoice.ConditionsPaiement = client.ConditionsPaiement
	}

	if err := uc.createWithNumber(ctx, invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

func (uc *InvoiceUseCase) createWithNumber(ctx context.Context, invoice *entity.Invoice) error {
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

// GetInvoice retourne une facture complète par id.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoiceToResponse(invoice), nil
}

// ListInvoices liste les factures, les plus récentes d'abord.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, limit, offset int) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, invoiceToResponse(inv))
	}
	return out, nil
}

// UpdateStatus applique une transition de statut de document. "payée" est
// dérivé par la réconciliation et n'est pas acceptable ici; une facture payée
// ne peut plus être annulée.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id, statut string) (*dto.InvoiceResponse, error) {
	if statut != entity.InvoiceStatusEnvoyee && statut != entity.InvoiceStatusAnnulee {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Statut == entity.InvoiceStatusPayee || invoice.Statut == entity.InvoiceStatusAnnulee {
		return nil, domain.ErrConflict
	}
	if err := uc.invoices.UpdateStatus(id, statut); err != nil {
		return nil, err
	}
	invoice.Statut = statut
	return invoiceToResponse(invoice), nil
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:                 inv.ID,
		Numero:             inv.Numero,
		DateFacture:        inv.DateFacture.Format("2006-01-02"),
		DevisID:            inv.DevisID,
		ClientID:           inv.ClientID,
		ClientNom:          inv.ClientNom,
		Articles:           linesToResponse(inv.Lines),
		SousTotal:          inv.SousTotal,
		TVA:                inv.TVA,
		TotalTTC:           inv.TotalTTC,
		NetAPayer:          inv.NetAPayer,
		Devise:             inv.Devise,
		MontantPaye:        inv.MontantPaye,
		StatutPaiement:     inv.StatutPaiement,
		Statut:             inv.Statut,
		DelaiLivraison:     inv.DelaiLivraison,
		ConditionsPaiement: inv.ConditionsPaiement,
		CreatedAt:          inv.CreatedAt.Format(time.RFC3339),
	}
}
