package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// PaymentUseCase réconcilie les paiements avec les factures.
//
// Le paiement est enregistré même si la facture cible n'existe pas: dans ce
// cas la réconciliation est simplement sautée et seul l'enregistrement
// append-only est conservé. Ce comportement asymétrique est un choix de
// conception assumé, pas un chemin d'erreur.
//
// La devise du paiement n'est pas confrontée à celle de la facture ici; ce
// contrôle, s'il est souhaité, appartient à l'appelant.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	invoices repository.InvoiceRepository
	// AllowOverpayment conserve la permissivité d'origine: un paiement qui
	// porte montant_paye au-delà du total TTC est accepté et la facture reste
	// "payée" avec un excédent. À false (durci), un tel paiement est rejeté
	// avant tout enregistrement.
	allowOverpayment bool
	now              func() time.Time
}

// NewPaymentUseCase construit le réconciliateur. allowOverpayment à false
// applique le comportement durci (rejet du trop-perçu).
func NewPaymentUseCase(payments repository.PaymentRepository, invoices repository.InvoiceRepository, allowOverpayment bool) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, invoices: invoices, allowOverpayment: allowOverpayment, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *PaymentUseCase) WithClock(now func() time.Time) *PaymentUseCase {
	uc.now = now
	return uc
}

// Apply enregistre un paiement et réconcilie la facture cible.
//
// montant_paye est incrémenté et le statut dérivé dans la même instruction en
// base (repository.RegisterPayment): deux paiements concurrents sur la même
// facture ne se perdent pas. Le statut résultant: "payé" si montant_paye ≥
// total_ttc, "partiel" sinon; "impayé" n'est jamais ré-examiné une fois qu'un
// paiement existe.
func (uc *PaymentUseCase) Apply(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Montant.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.DeviseValide(in.Devise) || !entity.ModePaiementValide(in.ModePaiement) {
		return nil, domain.ErrInvalidInput
	}
	if in.TypeDocument != entity.PaymentDocumentFacture {
		return nil, domain.ErrInvalidInput
	}

	invoice, err := uc.invoices.GetByID(in.DocumentID)
	if err != nil {
		return nil, err
	}
	if invoice != nil && !uc.allowOverpayment {
		if in.Montant.GreaterThan(invoice.Outstanding()) {
			return nil, domain.ErrOverpayment
		}
	}

	now := uc.now()
	payment := &entity.Payment{
		ID:                uuid.New().String(),
		TypeDocument:      in.TypeDocument,
		DocumentID:        in.DocumentID,
		Montant:           in.Montant,
		Devise:            in.Devise,
		ModePaiement:      in.ModePaiement,
		ReferencePaiement: in.ReferencePaiement,
		DatePaiement:      now,
		CreatedAt:         now,
	}
	if err := uc.payments.Create(payment); err != nil {
		return nil, err
	}

	resp := paymentToResponse(payment)
	if invoice == nil {
		log.Warn().
			Str("paiement_id", payment.ID).
			Str("document_id", in.DocumentID).
			Msg("paiement enregistré sans facture cible, réconciliation sautée")
		return resp, nil
	}

	updated, err := uc.invoices.RegisterPayment(invoice.ID, in.Montant, now)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		resp.StatutFacture = updated.StatutPaiement
	}
	return resp, nil
}

// GetPayment retourne un paiement par id.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return paymentToResponse(p), nil
}

// ListPayments liste les paiements, les plus récents d'abord.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, limit, offset int) ([]*dto.PaymentResponse, error) {
	list, err := uc.payments.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, paymentToResponse(p))
	}
	return out, nil
}

// ListByDocument liste les paiements d'une facture.
func (uc *PaymentUseCase) ListByDocument(ctx context.Context, documentID string) ([]*dto.PaymentResponse, error) {
	list, err := uc.payments.ListByDocument(documentID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, paymentToResponse(p))
	}
	return out, nil
}

func paymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:                p.ID,
		TypeDocument:      p.TypeDocument,
		DocumentID:        p.DocumentID,
		Montant:           p.Montant,
		Devise:            p.Devise,
		ModePaiement:      p.ModePaiement,
		ReferencePaiement: p.ReferencePaiement,
		DatePaiement:      p.DatePaiement.Format("2006-01-02"),
	}
}
