package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implémentation de InvoiceRepository.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construit l'adaptateur.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, numero, date_facture, devis_id, client_id, client_nom,
	sous_total, tva, total_ttc, net_a_payer, devise, montant_paye, statut_paiement,
	statut, delai_livraison, conditions_paiement, created_at, updated_at`

// Create persiste l'en-tête puis les lignes. domain.ErrDuplicate si le numéro
// est déjà pris.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO factures (id, numero, date_facture, devis_id, client_id, client_nom,
			sous_total, tva, total_ttc, net_a_payer, devise, montant_paye, statut_paiement,
			statut, delai_livraison, conditions_paiement, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Numero, invoice.DateFacture, nullIfEmpty(invoice.DevisID),
		invoice.ClientID, invoice.ClientNom, invoice.SousTotal, invoice.TVA,
		invoice.TotalTTC, invoice.NetAPayer, invoice.Devise, invoice.MontantPaye,
		invoice.StatutPaiement, invoice.Statut, nullIfEmpty(invoice.DelaiLivraison),
		nullIfEmpty(invoice.ConditionsPaiement), invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert facture: %w", err)
	}
	return insertLines(r.q, invoice.Lines)
}

// GetByID retourne une facture avec ses lignes, nil si absente.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM factures WHERE id = $1`
	invoice, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get facture: %w", err)
	}
	lines, err := loadLines(r.q, []string{invoice.ID})
	if err != nil {
		return nil, err
	}
	invoice.Lines = lines[invoice.ID]
	return invoice, nil
}

// List retourne les factures les plus récentes d'abord, lignes incluses.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM factures ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list factures: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	var ids []string
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan facture: %w", err)
		}
		list = append(list, invoice)
		ids = append(ids, invoice.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	lines, err := loadLines(r.q, ids)
	if err != nil {
		return nil, err
	}
	for _, invoice := range list {
		invoice.Lines = lines[invoice.ID]
	}
	return list, nil
}

// CountByNumberPrefix compte les factures dont le numéro commence par le motif
// littéral du compartiment.
func (r *InvoiceRepo) CountByNumberPrefix(prefix string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM factures WHERE numero LIKE $1 || '%'`, prefix).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count factures par numéro: %w", err)
	}
	return n, nil
}

// CountByClient compte les factures rattachées à un client.
func (r *InvoiceRepo) CountByClient(clientID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM factures WHERE client_id = $1`, clientID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count factures par client: %w", err)
	}
	return n, nil
}

// CountByQuote compte les factures issues d'un devis.
func (r *InvoiceRepo) CountByQuote(devisID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM factures WHERE devis_id = $1`, devisID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count factures par devis: %w", err)
	}
	return n, nil
}

// UpdateStatus pose le nouveau statut de document.
func (r *InvoiceRepo) UpdateStatus(id, statut string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE factures SET statut = $2, updated_at = NOW() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update statut facture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RegisterPayment incrémente montant_paye et dérive le statut de paiement dans
// la même instruction. Deux paiements concurrents s'additionnent correctement:
// pas de lecture-modification-écriture côté Go. Retourne nil si la facture
// n'existe pas.
func (r *InvoiceRepo) RegisterPayment(id string, amount decimal.Decimal, at time.Time) (*entity.Invoice, error) {
	query := `
		UPDATE factures SET
			montant_paye = montant_paye + $2,
			statut_paiement = CASE
				WHEN montant_paye + $2 >= total_ttc THEN 'payé'
				ELSE 'partiel'
			END,
			statut = CASE
				WHEN montant_paye + $2 >= total_ttc THEN 'payée'
				ELSE statut
			END,
			updated_at = $3
		WHERE id = $1
		RETURNING ` + invoiceColumns
	invoice, err := scanInvoice(r.q.QueryRow(context.Background(), query, id, amount, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("enregistrement paiement: %w", err)
	}
	return invoice, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	var devisID, delai, conditions *string
	err := row.Scan(
		&i.ID, &i.Numero, &i.DateFacture, &devisID, &i.ClientID, &i.ClientNom,
		&i.SousTotal, &i.TVA, &i.TotalTTC, &i.NetAPayer, &i.Devise, &i.MontantPaye,
		&i.StatutPaiement, &i.Statut, &delai, &conditions, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	i.DevisID = deref(devisID)
	i.DelaiLivraison = deref(delai)
	i.ConditionsPaiement = deref(conditions)
	return &i, nil
}
