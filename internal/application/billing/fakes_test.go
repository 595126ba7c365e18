package billing_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire des ports de persistance. Ils reproduisent les contrats
// documentés sur les interfaces: nil si absent, ErrDuplicate sur numéro pris,
// dérivation du statut de paiement dans RegisterPayment.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return paginate(out, limit, offset), nil
}

func (r *fakeClientRepo) CountByDevise(devise string) (int64, error) {
	var n int64
	for _, c := range r.clients {
		if c.Devise == devise {
			n++
		}
	}
	return n, nil
}

func (r *fakeClientRepo) UpdateFields(id string, upd entity.ClientUpdate) (*entity.Client, error) {
	c := r.clients[id]
	if c == nil {
		return nil, nil
	}
	if upd.Nom != nil {
		c.Nom = *upd.Nom
	}
	if upd.Devise != nil {
		c.Devise = *upd.Devise
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.ConditionsPaiement != nil {
		c.ConditionsPaiement = *upd.ConditionsPaiement
	}
	return c, nil
}

func (r *fakeClientRepo) Delete(id string) error {
	if r.clients[id] == nil {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
	order  []string
	// staleCountOnce fait mentir le premier comptage d'une unité: il simule
	// une allocation concurrente commise entre le comptage et la création.
	staleCountOnce bool
	countCalls     int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: map[string]*entity.Quote{}}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	for _, existing := range r.quotes {
		if existing.Numero == q.Numero {
			return domain.ErrDuplicate
		}
	}
	r.quotes[q.ID] = q
	r.order = append(r.order, q.ID)
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	return r.quotes[id], nil
}

func (r *fakeQuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.quotes[r.order[i]])
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeQuoteRepo) CountByNumberPrefix(prefix string) (int64, error) {
	var n int64
	for _, q := range r.quotes {
		if strings.HasPrefix(q.Numero, prefix) {
			n++
		}
	}
	r.countCalls++
	if r.staleCountOnce && r.countCalls == 1 && n > 0 {
		return n - 1, nil
	}
	return n, nil
}

func (r *fakeQuoteRepo) CountByClient(clientID string) (int64, error) {
	var n int64
	for _, q := range r.quotes {
		if q.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *fakeQuoteRepo) UpdateStatus(id, statut string) error {
	q := r.quotes[id]
	if q == nil {
		return domain.ErrNotFound
	}
	q.Statut = statut
	return nil
}

type fakeInvoiceRepo struct {
	invoices       map[string]*entity.Invoice
	order          []string
	staleCountOnce bool
	countCalls     int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range r.invoices {
		if existing.Numero == inv.Numero {
			return domain.ErrDuplicate
		}
	}
	r.invoices[inv.ID] = inv
	r.order = append(r.order, inv.ID)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.invoices[r.order[i]])
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeInvoiceRepo) CountByNumberPrefix(prefix string) (int64, error) {
	var n int64
	for _, inv := range r.invoices {
		if strings.HasPrefix(inv.Numero, prefix) {
			n++
		}
	}
	r.countCalls++
	if r.staleCountOnce && r.countCalls == 1 && n > 0 {
		return n - 1, nil
	}
	return n, nil
}

func (r *fakeInvoiceRepo) CountByClient(clientID string) (int64, error) {
	var n int64
	for _, inv := range r.invoices {
		if inv.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *fakeInvoiceRepo) CountByQuote(devisID string) (int64, error) {
	var n int64
	for _, inv := range r.invoices {
		if inv.DevisID == devisID {
			n++
		}
	}
	return n, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id, statut string) error {
	inv := r.invoices[id]
	if inv == nil {
		return domain.ErrNotFound
	}
	inv.Statut = statut
	return nil
}

func (r *fakeInvoiceRepo) RegisterPayment(id string, amount decimal.Decimal, at time.Time) (*entity.Invoice, error) {
	inv := r.invoices[id]
	if inv == nil {
		return nil, nil
	}
	inv.MontantPaye = inv.MontantPaye.Add(amount)
	if inv.MontantPaye.GreaterThanOrEqual(inv.TotalTTC) {
		inv.StatutPaiement = entity.PaymentStatusPaye
		inv.Statut = entity.InvoiceStatusPayee
	} else {
		inv.StatutPaiement = entity.PaymentStatusPartiel
	}
	inv.UpdatedAt = at
	return inv, nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	out := make([]*entity.Payment, 0, len(r.payments))
	for i := len(r.payments) - 1; i >= 0; i-- {
		out = append(out, r.payments[i])
	}
	return paginate(out, limit, offset), nil
}

func (r *fakePaymentRepo) ListByDocument(documentID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.DocumentID == documentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListInPeriod(from, to time.Time) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if !p.DatePaiement.Before(from) && !p.DatePaiement.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeTxRunner exécute la fonction directement sur les fakes, sans transaction.
type fakeTxRunner struct {
	quotes   *fakeQuoteRepo
	invoices *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunDocuments(ctx context.Context, fn func(
	quotes repository.QuoteRepository,
	invoices repository.InvoiceRepository,
) error) error {
	return fn(r.quotes, r.invoices)
}

var _ billing.DocumentTxRunner = (*fakeTxRunner)(nil)

func paginate[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
