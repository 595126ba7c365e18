package billing

import (
	"context"

	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// DocumentTxRunner exécute une fonction avec des repositories devis/factures
// liés à la même transaction. Utilisé pour écrire en-tête et lignes d'un même
// document atomiquement. Aucune transaction inter-entités n'est supposée
// disponible: la conversion devis→facture reste deux écritures séparées.
type DocumentTxRunner interface {
	RunDocuments(ctx context.Context, fn func(
		quotes repository.QuoteRepository,
		invoices repository.InvoiceRepository,
	) error) error
}

// DocumentPDFGenerator rend un document commercial en PDF. Implémenté par
// l'infrastructure (Maroto); le cœur ne connaît que ce port.
type DocumentPDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote, client *entity.Client) ([]byte, error)
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, client *entity.Client) ([]byte, error)
	GeneratePaymentPDF(ctx context.Context, payment *entity.Payment, invoice *entity.Invoice) ([]byte, error)
}

// NumberCounter compte les documents persistés dont le numéro commence par le
// motif littéral d'un compartiment. Satisfait par les repositories devis et
// factures.
type NumberCounter interface {
	CountByNumberPrefix(prefix string) (int64, error)
}
