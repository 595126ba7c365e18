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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implémentation de StockRepository.
type StockRepo struct {
	q Querier
}

// NewStockRepository construit l'adaptateur.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, ref, designation, quantite_disponible, seuil_alerte,
	cout_moyen, prix_vente, fournisseur, created_at, updated_at`

// Create persiste un nouvel article. domain.ErrDuplicate si la ref est déjà prise.
func (r *StockRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO articles_stock (id, ref, designation, quantite_disponible, seuil_alerte,
			cout_moyen, prix_vente, fournisseur, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Ref, item.Designation, item.QuantiteDisponible, item.SeuilAlerte,
		item.CoutMoyen, item.PrixVente, nullIfEmpty(item.Fournisseur),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article stock: %w", err)
	}
	return nil
}

// GetByID retourne un article par id, nil si absent.
func (r *StockRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM articles_stock WHERE id = $1`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article stock: %w", err)
	}
	return item, nil
}

// List retourne les articles triés par référence, paginés.
func (r *StockRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM articles_stock ORDER BY ref LIMIT $1 OFFSET $2`
	return r.queryItems(query, limit, offset)
}

// ListAlerts retourne les articles strictement sous leur seuil d'alerte.
func (r *StockRepo) ListAlerts() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM articles_stock
		WHERE quantite_disponible < seuil_alerte ORDER BY ref`
	return r.queryItems(query)
}

// UpdateFields applique les champs non nil, nil si l'article n'existe pas.
func (r *StockRepo) UpdateFields(id string, upd entity.StockItemUpdate) (*entity.StockItem, error) {
	query := `
		UPDATE articles_stock SET
			ref = COALESCE($2, ref),
			designation = COALESCE($3, designation),
			quantite_disponible = COALESCE($4, quantite_disponible),
			seuil_alerte = COALESCE($5, seuil_alerte),
			cout_moyen = COALESCE($6, cout_moyen),
			prix_vente = COALESCE($7, prix_vente),
			fournisseur = COALESCE($8, fournisseur),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + stockColumns
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query,
		id, upd.Ref, upd.Designation, upd.QuantiteDisponible, upd.SeuilAlerte,
		upd.CoutMoyen, upd.PrixVente, upd.Fournisseur,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update article stock: %w", err)
	}
	return item, nil
}

// Delete supprime un article par id.
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articles_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article stock: %w", err)
	}
	return nil
}

func (r *StockRepo) queryItems(query string, args ...any) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article stock: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	var fournisseur *string
	err := row.Scan(
		&s.ID, &s.Ref, &s.Designation, &s.QuantiteDisponible, &s.SeuilAlerte,
		&s.CoutMoyen, &s.PrixVente, &fournisseur, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Fournisseur = deref(fournisseur)
	return &s, nil
}
