package domain

import "errors"

// Erreurs de domaine (sans dépendances externes). Chaque opération retourne
// une erreur typée à son appelant; le cœur ne réessaie jamais en interne,
// à l'exception de la boucle bornée d'allocation de numéro.
var (
	ErrNotFound           = errors.New("ressource non trouvée")
	ErrUserNotFound       = errors.New("utilisateur non trouvé")
	ErrEmailAlreadyExists = errors.New("l'email est déjà enregistré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrConflict           = errors.New("conflit avec l'état actuel")
	ErrOverpayment        = errors.New("le paiement dépasse le solde de la facture")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
)
