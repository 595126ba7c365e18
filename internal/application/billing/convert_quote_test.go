package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
)

// createQuoteForConversion crée un devis prêt à convertir et retourne sa réponse.
func createQuoteForConversion(t *testing.T, f *billingFakes) *dto.QuoteResponse {
	t.Helper()
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)
	resp, err := uc.CreateQuote(context.Background(), quoteRequest(seedClient(t, f)))
	require.NoError(t, err)
	return resp
}

func TestConvert_CopieLeContenuCommercial(t *testing.T) {
	f := newBillingFakes()
	quote := createQuoteForConversion(t, f)
	uc := billing.NewConvertQuoteUseCase(f.quotes, f.invoices, f.tx).WithClock(fixedClock)

	inv, err := uc.Convert(context.Background(), quote.ID)
	require.NoError(t, err)

	assert.Equal(t, "FACT/SOCIETEIVO/15082026/001", inv.Numero, "la facture reçoit un numéro FACT neuf")
	assert.Equal(t, quote.ID, inv.DevisID, "la facture référence son devis d'origine")
	assert.Equal(t, quote.ClientID, inv.ClientID)
	assert.Equal(t, quote.SousTotal.String(), inv.SousTotal.String())
	assert.Equal(t, quote.TVA.String(), inv.TVA.String())
	assert.Equal(t, quote.TotalTTC.String(), inv.TotalTTC.String())
	assert.Equal(t, quote.Devise, inv.Devise, "la devise figée du devis est conservée")
	require.Len(t, inv.Articles, len(quote.Articles))
	for i, l := range inv.Articles {
		assert.Equal(t, quote.Articles[i].Designation, l.Designation)
		assert.Equal(t, quote.Articles[i].Total.String(), l.Total.String())
	}

	assert.True(t, inv.MontantPaye.IsZero(), "une facture neuve n'a rien d'encaissé")
	assert.Equal(t, entity.PaymentStatusImpaye, inv.StatutPaiement)
	assert.Equal(t, entity.InvoiceStatusEmise, inv.Statut)
}

func TestConvert_MarqueLeDevisConverti(t *testing.T) {
	f := newBillingFakes()
	quote := createQuoteForConversion(t, f)
	uc := billing.NewConvertQuoteUseCase(f.quotes, f.invoices, f.tx).WithClock(fixedClock)

	_, err := uc.Convert(context.Background(), quote.ID)
	require.NoError(t, err)

	stored, err := f.quotes.GetByID(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusConverti, stored.Statut)
}

func TestConvert_DeuxiemeConversionRejetee(t *testing.T) {
	f := newBillingFakes()
	quote := createQuoteForConversion(t, f)
	uc := billing.NewConvertQuoteUseCase(f.quotes, f.invoices, f.tx).WithClock(fixedClock)

	_, err := uc.Convert(context.Background(), quote.ID)
	require.NoError(t, err)

	_, err = uc.Convert(context.Background(), quote.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un devis converti ne peut pas produire une seconde facture")

	n, err := f.invoices.CountByQuote(quote.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "exactement une facture référence le devis")
}

func TestConvert_DevisInconnu(t *testing.T) {
	f := newBillingFakes()
	uc := billing.NewConvertQuoteUseCase(f.quotes, f.invoices, f.tx)

	_, err := uc.Convert(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
