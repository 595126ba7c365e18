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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation de ClientRepository (utilisable avec pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, nom, numero_cc, numero_rc, nif, email, telephone, adresse,
	devise, type_client, conditions_paiement, created_at, updated_at`

// Create persiste un nouveau client.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, nom, numero_cc, numero_rc, nif, email, telephone, adresse,
			devise, type_client, conditions_paiement, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Nom, nullIfEmpty(client.NumeroCC), nullIfEmpty(client.NumeroRC),
		nullIfEmpty(client.NIF), nullIfEmpty(client.Email), nullIfEmpty(client.Telephone),
		nullIfEmpty(client.Adresse), client.Devise, client.TypeClient,
		nullIfEmpty(client.ConditionsPaiement), client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID retourne un client par id, nil si absent.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List retourne les clients triés par nom, paginés.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY nom LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByDevise compte les clients d'une devise.
func (r *ClientRepo) CountByDevise(devise string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM clients WHERE devise = $1`, devise).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clients par devise: %w", err)
	}
	return n, nil
}

// UpdateFields applique les champs non nil et retourne la fiche mise à jour,
// nil si le client n'existe pas.
func (r *ClientRepo) UpdateFields(id string, upd entity.ClientUpdate) (*entity.Client, error) {
	query := `
		UPDATE clients SET
			nom = COALESCE($2, nom),
			numero_cc = COALESCE($3, numero_cc),
			numero_rc = COALESCE($4, numero_rc),
			nif = COALESCE($5, nif),
			email = COALESCE($6, email),
			telephone = COALESCE($7, telephone),
			adresse = COALESCE($8, adresse),
			devise = COALESCE($9, devise),
			type_client = COALESCE($10, type_client),
			conditions_paiement = COALESCE($11, conditions_paiement),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + clientColumns
	c, err := scanClient(r.q.QueryRow(context.Background(), query,
		id, upd.Nom, upd.NumeroCC, upd.NumeroRC, upd.NIF, upd.Email,
		upd.Telephone, upd.Adresse, upd.Devise, upd.TypeClient, upd.ConditionsPaiement,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

// Delete supprime un client par id. La garde de référencement (devis ou
// factures existants) est appliquée par le cas d'usage avant l'appel.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var numeroCC, numeroRC, nif, email, telephone, adresse, conditions *string
	err := row.Scan(
		&c.ID, &c.Nom, &numeroCC, &numeroRC, &nif, &email, &telephone, &adresse,
		&c.Devise, &c.TypeClient, &conditions, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.NumeroCC = deref(numeroCC)
	c.NumeroRC = deref(numeroRC)
	c.NIF = deref(nif)
	c.Email = deref(email)
	c.Telephone = deref(telephone)
	c.Adresse = deref(adresse)
	c.ConditionsPaiement = deref(conditions)
	return &c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
