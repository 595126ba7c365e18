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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implémentation de SupplierRepository.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construit l'adaptateur.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, nom, numero_cc, email, telephone, adresse,
	devise, conditions_paiement, created_at, updated_at`

// Create persiste un nouveau fournisseur.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO fournisseurs (id, nom, numero_cc, email, telephone, adresse,
			devise, conditions_paiement, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Nom, nullIfEmpty(supplier.NumeroCC), nullIfEmpty(supplier.Email),
		nullIfEmpty(supplier.Telephone), nullIfEmpty(supplier.Adresse), supplier.Devise,
		nullIfEmpty(supplier.ConditionsPaiement), supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fournisseur: %w", err)
	}
	return nil
}

// GetByID retourne un fournisseur par id, nil si absent.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fournisseurs WHERE id = $1`
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fournisseur: %w", err)
	}
	return s, nil
}

// List retourne les fournisseurs triés par nom, paginés.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fournisseurs ORDER BY nom LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fournisseurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fournisseur: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateFields applique les champs non nil, nil si le fournisseur n'existe pas.
func (r *SupplierRepo) UpdateFields(id string, upd entity.SupplierUpdate) (*entity.Supplier, error) {
	query := `
		UPDATE fournisseurs SET
			nom = COALESCE($2, nom),
			numero_cc = COALESCE($3, numero_cc),
			email = COALESCE($4, email),
			telephone = COALESCE($5, telephone),
			adresse = COALESCE($6, adresse),
			devise = COALESCE($7, devise),
			conditions_paiement = COALESCE($8, conditions_paiement),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + supplierColumns
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query,
		id, upd.Nom, upd.NumeroCC, upd.Email, upd.Telephone, upd.Adresse,
		upd.Devise, upd.ConditionsPaiement,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update fournisseur: %w", err)
	}
	return s, nil
}

// Delete supprime un fournisseur par id.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fournisseurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fournisseur: %w", err)
	}
	return nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var numeroCC, email, telephone, adresse, conditions *string
	err := row.Scan(
		&s.ID, &s.Nom, &numeroCC, &email, &telephone, &adresse,
		&s.Devise, &conditions, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.NumeroCC = deref(numeroCC)
	s.Email = deref(email)
	s.Telephone = deref(telephone)
	s.Adresse = deref(adresse)
	s.ConditionsPaiement = deref(conditions)
	return &s, nil
}
