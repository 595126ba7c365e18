package billing

import (
	"context"

	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// DocumentPDFUseCase charge un document et le rend en PDF via le générateur
// d'infrastructure.
type DocumentPDFUseCase struct {
	quotes   repository.QuoteRepository
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
	clients  repository.ClientRepository
	gen      DocumentPDFGenerator
}

func NewDocumentPDFUseCase(
	quotes repository.QuoteRepository,
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	clients repository.ClientRepository,
	gen DocumentPDFGenerator,
) *DocumentPDFUseCase {
	return &DocumentPDFUseCase{quotes: quotes, invoices: invoices, payments: payments, clients: clients, gen: gen}
}

// QuotePDF rend le devis identifié en PDF.
func (uc *DocumentPDFUseCase) QuotePDF(ctx context.Context, id string) ([]byte, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clients.GetByID(quote.ClientID)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateQuotePDF(ctx, quote, client)
}

// InvoicePDF rend la facture identifiée en PDF.
func (uc *DocumentPDFUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clients.GetByID(invoice.ClientID)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateInvoicePDF(ctx, invoice, client)
}

// PaymentPDF rend le reçu du paiement identifié. La facture associée est
// passée au générateur si elle existe encore; un reçu reste imprimable même
// pour un paiement orphelin.
func (uc *DocumentPDFUseCase) PaymentPDF(ctx context.Context, id string) ([]byte, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	invoice, err := uc.invoices.GetByID(payment.DocumentID)
	if err != nil {
		return nil, err
	}
	return uc.gen.GeneratePaymentPDF(ctx, payment, invoice)
}
