package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
)

// seedInvoice convertit un devis en facture de 118000 TTC
// (100000 HT + 18000 de TVA) et retourne son id.
func seedInvoice(t *testing.T, f *billingFakes) string {
	t.Helper()
	clientID := seedClient(t, f)
	quoteUC := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)
	quote, err := quoteUC.CreateQuote(context.Background(), dto.CreateQuoteRequest{
		ClientID: clientID,
		Articles: []dto.LineRequest{
			{Designation: "Pompe de surface 2CV", Quantite: decimal.NewFromInt(1), PrixUnitaire: decimal.NewFromInt(100000)},
		},
		TVA: decimal.NewFromInt(18000),
	})
	require.NoError(t, err)

	uc := billing.NewConvertQuoteUseCase(f.quotes, f.invoices, f.tx).WithClock(fixedClock)
	inv, err := uc.Convert(context.Background(), quote.ID)
	require.NoError(t, err)
	require.Equal(t, "118000", inv.TotalTTC.String())
	return inv.ID
}

func paymentRequest(documentID string, montant int64) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		TypeDocument: entity.PaymentDocumentFacture,
		DocumentID:   documentID,
		Montant:      decimal.NewFromInt(montant),
		Devise:       entity.DeviseEUR,
		ModePaiement: entity.ModeVirement,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Réconciliation paiement → facture
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_PaiementPartielPuisSolde(t *testing.T) {
	f := newBillingFakes()
	invoiceID := seedInvoice(t, f) // total TTC 118000
	uc := billing.NewPaymentUseCase(f.payments, f.invoices, false)

	resp, err := uc.Apply(context.Background(), paymentRequest(invoiceID, 40000))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPartiel, resp.StatutFacture,
		"un encaissement inférieur au total TTC laisse la facture partielle")

	resp, err = uc.Apply(context.Background(), paymentRequest(invoiceID, 78000))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaye, resp.StatutFacture,
		"le solde exact porte la facture à payé")

	inv, err := f.invoices.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "118000", inv.MontantPaye.String())
	assert.True(t, inv.Outstanding().IsZero())
	assert.Equal(t, entity.InvoiceStatusPayee, inv.Statut,
		"le statut de la facture suit le statut de paiement")

	paiements, err := f.payments.ListByDocument(invoiceID)
	require.NoError(t, err)
	assert.Len(t, paiements, 2, "chaque encaissement laisse un enregistrement append-only")
}

func TestApply_TropPercuRejeteParDefaut(t *testing.T) {
	f := newBillingFakes()
	invoiceID := seedInvoice(t, f)
	uc := billing.NewPaymentUseCase(f.payments, f.invoices, false)

	_, err := uc.Apply(context.Background(), paymentRequest(invoiceID, 118001))
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	assert.Empty(t, f.payments.payments, "un trop-perçu rejeté n'est pas enregistré")
	inv, err := f.invoices.GetByID(invoiceID)
	require.NoError(t, err)
	assert.True(t, inv.MontantPaye.IsZero(), "la facture reste intacte")
}

func TestApply_TropPercuAccepteEnModePermissif(t *testing.T) {
	f := newBillingFakes()
	invoiceID := seedInvoice(t, f)
	uc := billing.NewPaymentUseCase(f.payments, f.invoices, true)

	resp, err := uc.Apply(context.Background(), paymentRequest(invoiceID, 118001))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaye, resp.StatutFacture)

	inv, err := f.invoices.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "118001", inv.MontantPaye.String(),
		"l'excédent est conservé sur la facture")
	assert.True(t, inv.Outstanding().IsNegative())
}

func TestApply_FactureInconnue_PaiementConserve(t *testing.T) {
	f := newBillingFakes()
	uc := billing.NewPaymentUseCase(f.payments, f.invoices, false)

	resp, err := uc.Apply(context.Background(), paymentRequest("facture-absente", 50000))
	require.NoError(t, err, "l'absence de facture cible n'est pas une erreur")
	assert.Empty(t, resp.StatutFacture, "pas de réconciliation sans facture")

	paiements, err := f.payments.ListByDocument("facture-absente")
	require.NoError(t, err)
	assert.Len(t, paiements, 1, "le paiement est tout de même enregistré")
}

func TestApply_EntreesInvalides(t *testing.T) {
	f := newBillingFakes()
	invoiceID := seedInvoice(t, f)
	uc := billing.NewPaymentUseCase(f.payments, f.invoices, false)

	cases := []struct {
		name   string
		mutate func(*dto.CreatePaymentRequest)
	}{
		{"montant nul", func(r *dto.CreatePaymentRequest) { r.Montant = decimal.Zero }},
		{"montant négatif", func(r *dto.CreatePaymentRequest) { r.Montant = decimal.NewFromInt(-1) }},
		{"devise inconnue", func(r *dto.CreatePaymentRequest) { r.Devise = "USD" }},
		{"mode inconnu", func(r *dto.CreatePaymentRequest) { r.ModePaiement = "troc" }},
		{"type non facturable", func(r *dto.CreatePaymentRequest) { r.TypeDocument = "devis" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := paymentRequest(invoiceID, 1000)
			tc.mutate(&req)
			_, err := uc.Apply(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.payments.payments)
}
