package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implémentation de PaymentRepository. Table append-only: aucun
// UPDATE ni DELETE n'est émis sur paiements.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construit l'adaptateur.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, type_document, document_id, montant, devise,
	mode_paiement, reference_paiement, date_paiement, created_at`

// Create persiste un nouvel encaissement.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO paiements (id, type_document, document_id, montant, devise,
			mode_paiement, reference_paiement, date_paiement, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.TypeDocument, payment.DocumentID, payment.Montant,
		payment.Devise, payment.ModePaiement, nullIfEmpty(payment.ReferencePaiement),
		payment.DatePaiement, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paiement: %w", err)
	}
	return nil
}

// GetByID retourne un paiement par id, nil si absent.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM paiements WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paiement: %w", err)
	}
	return p, nil
}

// List retourne les paiements les plus récents d'abord.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM paiements ORDER BY date_paiement DESC LIMIT $1 OFFSET $2`
	return r.queryPayments(query, limit, offset)
}

// ListByDocument retourne les paiements d'un document, du plus ancien au plus récent.
func (r *PaymentRepo) ListByDocument(documentID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM paiements WHERE document_id = $1 ORDER BY date_paiement`
	return r.queryPayments(query, documentID)
}

// ListInPeriod retourne les paiements dont la date tombe dans [from, to].
func (r *PaymentRepo) ListInPeriod(from, to time.Time) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM paiements
		WHERE date_paiement BETWEEN $1 AND $2 ORDER BY date_paiement`
	return r.queryPayments(query, from, to)
}

func (r *PaymentRepo) queryPayments(query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list paiements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paiement: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var ref *string
	err := row.Scan(
		&p.ID, &p.TypeDocument, &p.DocumentID, &p.Montant, &p.Devise,
		&p.ModePaiement, &ref, &p.DatePaiement, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ReferencePaiement = deref(ref)
	return &p, nil
}
