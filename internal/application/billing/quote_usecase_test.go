package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// Horloge fixe pour des numéros de document déterministes.
var testDate = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testDate }

type billingFakes struct {
	clients  *fakeClientRepo
	quotes   *fakeQuoteRepo
	invoices *fakeInvoiceRepo
	payments *fakePaymentRepo
	tx       *fakeTxRunner
}

func newBillingFakes() *billingFakes {
	quotes := newFakeQuoteRepo()
	invoices := newFakeInvoiceRepo()
	return &billingFakes{
		clients:  newFakeClientRepo(),
		quotes:   quotes,
		invoices: invoices,
		payments: &fakePaymentRepo{},
		tx:       &fakeTxRunner{quotes: quotes, invoices: invoices},
	}
}

// seedClient insère un client EUR nommé "Société Ivoirienne des Eaux" et
// retourne son id.
func seedClient(t *testing.T, f *billingFakes) string {
	t.Helper()
	client := &entity.Client{
		ID:                 uuid.New().String(),
		Nom:                "Société Ivoirienne des Eaux",
		Devise:             entity.DeviseEUR,
		TypeClient:         entity.ClientTypeStandard,
		ConditionsPaiement: "30 jours fin de mois",
	}
	require.NoError(t, f.clients.Create(client))
	return client.ID
}

func quoteRequest(clientID string) dto.CreateQuoteRequest {
	return dto.CreateQuoteRequest{
		ClientID: clientID,
		Articles: []dto.LineRequest{
			{Ref: "EP-150", Designation: "Pompe centrifuge 150m³/h", Quantite: decimal.NewFromInt(2), PrixUnitaire: decimal.NewFromInt(150000)},
			{Designation: "Kit de raccordement", Quantite: decimal.NewFromInt(1), PrixUnitaire: decimal.NewFromInt(78000)},
		},
		TVA: decimal.NewFromInt(6840),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Création de devis
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateQuote_NumeroTotauxEtDevise(t *testing.T) {
	f := newBillingFakes()
	clientID := seedClient(t, f)
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)

	resp, err := uc.CreateQuote(context.Background(), quoteRequest(clientID))
	require.NoError(t, err)

	// Nom replié: majuscules, sans accents ni espaces, tronqué à 10 caractères.
	assert.Equal(t, "DEV/SOCIETEIVO/15082026/001", resp.Numero)
	assert.Equal(t, "378000", resp.SousTotal.String(), "sous-total = Σ quantité × prix unitaire")
	assert.Equal(t, "384840", resp.TotalTTC.String(), "total TTC = sous-total + TVA")
	assert.Equal(t, resp.TotalTTC.String(), resp.NetAPayer.String())
	assert.Equal(t, entity.QuoteStatusBrouillon, resp.Statut)
	assert.Equal(t, entity.DeviseEUR, resp.Devise, "la devise du client est figée sur le devis")
	assert.Equal(t, "30 jours fin de mois", resp.ConditionsPaiement,
		"conditions du client reprises quand la requête n'en donne pas")
}

func TestCreateQuote_SequenceParCompartiment(t *testing.T) {
	f := newBillingFakes()
	clientID := seedClient(t, f)
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)

	first, err := uc.CreateQuote(context.Background(), quoteRequest(clientID))
	require.NoError(t, err)
	second, err := uc.CreateQuote(context.Background(), quoteRequest(clientID))
	require.NoError(t, err)

	assert.Equal(t, "DEV/SOCIETEIVO/15082026/001", first.Numero)
	assert.Equal(t, "DEV/SOCIETEIVO/15082026/002", second.Numero,
		"même client même jour: la séquence s'incrémente")
}

func TestCreateQuote_ClientInconnu(t *testing.T) {
	f := newBillingFakes()
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)

	_, err := uc.CreateQuote(context.Background(), quoteRequest("absent"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateQuote_LignesInvalides(t *testing.T) {
	f := newBillingFakes()
	clientID := seedClient(t, f)
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)

	sansLignes := quoteRequest(clientID)
	sansLignes.Articles = nil
	_, err := uc.CreateQuote(context.Background(), sansLignes)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un devis sans ligne est rejeté")

	quantiteNegative := quoteRequest(clientID)
	quantiteNegative.Articles[0].Quantite = decimal.NewFromInt(-1)
	_, err = uc.CreateQuote(context.Background(), quantiteNegative)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantité négative rejetée")
}

// Simule une allocation concurrente: le premier comptage est périmé, la
// contrainte d'unicité renvoie ErrDuplicate et le réessai aboutit avec le
// numéro suivant.
func TestCreateQuote_ReessaiSurAllocationConcurrente(t *testing.T) {
	f := newBillingFakes()
	clientID := seedClient(t, f)
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)

	_, err := uc.CreateQuote(context.Background(), quoteRequest(clientID))
	require.NoError(t, err)

	f.quotes.staleCountOnce = true
	f.quotes.countCalls = 0
	resp, err := uc.CreateQuote(context.Background(), quoteRequest(clientID))
	require.NoError(t, err, "l'allocation doit réessayer après ErrDuplicate")
	assert.Equal(t, "DEV/SOCIETEIVO/15082026/002", resp.Numero)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transitions de statut
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteUpdateStatus_Transitions(t *testing.T) {
	f := newBillingFakes()
	clientID := seedClient(t, f)
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)

	created, err := uc.CreateQuote(context.Background(), quoteRequest(clientID))
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(context.Background(), created.ID, entity.QuoteStatusEnvoye)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusEnvoye, resp.Statut)

	resp, err = uc.UpdateStatus(context.Background(), created.ID, entity.QuoteStatusRefuse)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRefuse, resp.Statut)

	// "refusé" est terminal.
	_, err = uc.UpdateStatus(context.Background(), created.ID, entity.QuoteStatusEnvoye)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestQuoteUpdateStatus_ConvertiRefuseParCeChemin(t *testing.T) {
	f := newBillingFakes()
	clientID := seedClient(t, f)
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx).WithClock(fixedClock)

	created, err := uc.CreateQuote(context.Background(), quoteRequest(clientID))
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), created.ID, entity.QuoteStatusConverti)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"seul le convertisseur devis→facture pose le statut converti")
}

func TestQuoteUpdateStatus_DevisInconnu(t *testing.T) {
	f := newBillingFakes()
	uc := billing.NewQuoteUseCase(f.clients, f.quotes, f.tx)

	_, err := uc.UpdateStatus(context.Background(), "absent", entity.QuoteStatusEnvoye)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
