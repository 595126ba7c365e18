package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implémentation de QuoteRepository. L'en-tête vit dans devis, les
// lignes dans lignes_document (table partagée avec les factures). Pour que
// en-tête et lignes soient écrits atomiquement, construire le repo sur une tx
// via TxRunner.RunDocuments.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construit l'adaptateur.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, numero, date_devis, client_id, client_nom, sous_total, tva,
	total_ttc, net_a_payer, devise, delai_livraison, conditions_paiement, statut,
	created_at, updated_at`

// Create persiste l'en-tête puis les lignes. La contrainte d'unicité sur
// numero transforme une course de numérotation en domain.ErrDuplicate.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO devis (id, numero, date_devis, client_id, client_nom, sous_total, tva,
			total_ttc, net_a_payer, devise, delai_livraison, conditions_paiement, statut,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Numero, quote.DateDevis, quote.ClientID, quote.ClientNom,
		quote.SousTotal, quote.TVA, quote.TotalTTC, quote.NetAPayer, quote.Devise,
		nullIfEmpty(quote.DelaiLivraison), nullIfEmpty(quote.ConditionsPaiement),
		quote.Statut, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert devis: %w", err)
	}
	return insertLines(r.q, quote.Lines)
}

// GetByID retourne un devis avec ses lignes, nil si absent.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM devis WHERE id = $1`
	quote, err := scanQuote(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get devis: %w", err)
	}
	lines, err := loadLines(r.q, []string{quote.ID})
	if err != nil {
		return nil, err
	}
	quote.Lines = lines[quote.ID]
	return quote, nil
}

// List retourne les devis les plus récents d'abord, lignes incluses.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM devis ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devis: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	var ids []string
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan devis: %w", err)
		}
		list = append(list, quote)
		ids = append(ids, quote.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	lines, err := loadLines(r.q, ids)
	if err != nil {
		return nil, err
	}
	for _, quote := range list {
		quote.Lines = lines[quote.ID]
	}
	return list, nil
}

// CountByNumberPrefix compte les devis dont le numéro commence par le motif
// littéral du compartiment.
func (r *QuoteRepo) CountByNumberPrefix(prefix string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM devis WHERE numero LIKE $1 || '%'`, prefix).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count devis par numéro: %w", err)
	}
	return n, nil
}

// CountByClient compte les devis rattachés à un client.
func (r *QuoteRepo) CountByClient(clientID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM devis WHERE client_id = $1`, clientID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count devis par client: %w", err)
	}
	return n, nil
}

// UpdateStatus pose le nouveau statut sans validation de transition.
func (r *QuoteRepo) UpdateStatus(id, statut string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE devis SET statut = $2, updated_at = NOW() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update statut devis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	var delai, conditions *string
	err := row.Scan(
		&q.ID, &q.Numero, &q.DateDevis, &q.ClientID, &q.ClientNom, &q.SousTotal, &q.TVA,
		&q.TotalTTC, &q.NetAPayer, &q.Devise, &delai, &conditions, &q.Statut,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	q.DelaiLivraison = deref(delai)
	q.ConditionsPaiement = deref(conditions)
	return &q, nil
}

// insertLines persiste les lignes d'un document (devis ou facture).
func insertLines(q Querier, lines []entity.DocumentLine) error {
	for _, l := range lines {
		_, err := q.Exec(context.Background(), `
			INSERT INTO lignes_document (id, parent_id, item, ref, designation, quantite, prix_unitaire, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, l.ParentID, l.Item, nullIfEmpty(l.Ref), l.Designation,
			l.Quantite, l.PrixUnitaire, l.Total,
		)
		if err != nil {
			return fmt.Errorf("insert ligne document: %w", err)
		}
	}
	return nil
}

// loadLines charge les lignes des documents indiqués, groupées par parent et
// ordonnées par position.
func loadLines(q Querier, parentIDs []string) (map[string][]entity.DocumentLine, error) {
	out := make(map[string][]entity.DocumentLine, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}
	rows, err := q.Query(context.Background(), `
		SELECT id, parent_id, item, ref, designation, quantite, prix_unitaire, total
		FROM lignes_document WHERE parent_id = ANY($1) ORDER BY parent_id, item`,
		parentIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("load lignes document: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.DocumentLine
		var ref *string
		if err := rows.Scan(&l.ID, &l.ParentID, &l.Item, &ref, &l.Designation,
			&l.Quantite, &l.PrixUnitaire, &l.Total); err != nil {
			return nil, fmt.Errorf("scan ligne document: %w", err)
		}
		l.Ref = deref(ref)
		out[l.ParentID] = append(out[l.ParentID], l)
	}
	return out, rows.Err()
}
