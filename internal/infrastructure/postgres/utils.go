package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation vérifie si une erreur est une violation de contrainte
// d'unicité (23505). C'est le signal de perte de course sur les numéros de
// document: l'appelant réessaie avec un numéro recalculé.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullIfEmpty convertit une chaîne vide en nil pour les colonnes nullables.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
