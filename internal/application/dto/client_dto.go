package dto

// CreateClientRequest body pour POST /api/clients.
type CreateClientRequest struct {
	Nom                string `json:"nom" validate:"required"`
	NumeroCC           string `json:"numero_cc,omitempty"`
	NumeroRC           string `json:"numero_rc,omitempty"`
	NIF                string `json:"nif,omitempty"`
	Email              string `json:"email,omitempty" validate:"omitempty,email"`
	Telephone          string `json:"telephone,omitempty"`
	Adresse            string `json:"adresse,omitempty"`
	Devise             string `json:"devise,omitempty" validate:"omitempty,oneof=FCFA EUR"`
	TypeClient         string `json:"type_client,omitempty" validate:"omitempty,oneof=standard revendeur industriel institution"`
	ConditionsPaiement string `json:"conditions_paiement,omitempty"`
}

// UpdateClientRequest body pour PUT /api/clients/:id. Seuls les champs de la
// liste blanche sont acceptés; un champ absent (nil) n'est pas modifié.
type UpdateClientRequest struct {
	Nom                *string `json:"nom,omitempty"`
	NumeroCC           *string `json:"numero_cc,omitempty"`
	NumeroRC           *string `json:"numero_rc,omitempty"`
	NIF                *string `json:"nif,omitempty"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Telephone          *string `json:"telephone,omitempty"`
	Adresse            *string `json:"adresse,omitempty"`
	Devise             *string `json:"devise,omitempty" validate:"omitempty,oneof=FCFA EUR"`
	TypeClient         *string `json:"type_client,omitempty" validate:"omitempty,oneof=standard revendeur industriel institution"`
	ConditionsPaiement *string `json:"conditions_paiement,omitempty"`
}

// ClientResponse fiche client dans les réponses.
type ClientResponse struct {
	ID                 string `json:"client_id"`
	Nom                string `json:"nom"`
	NumeroCC           string `json:"numero_cc,omitempty"`
	NumeroRC           string `json:"numero_rc,omitempty"`
	NIF                string `json:"nif,omitempty"`
	Email              string `json:"email,omitempty"`
	Telephone          string `json:"telephone,omitempty"`
	Adresse            string `json:"adresse,omitempty"`
	Devise             string `json:"devise"`
	TypeClient         string `json:"type_client"`
	ConditionsPaiement string `json:"conditions_paiement,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// CreateSupplierRequest body pour POST /api/fournisseurs.
type CreateSupplierRequest struct {
	Nom                string `json:"nom" validate:"required"`
	NumeroCC           string `json:"numero_cc,omitempty"`
	Email              string `json:"email,omitempty" validate:"omitempty,email"`
	Telephone          string `json:"telephone,omitempty"`
	Adresse            string `json:"adresse,omitempty"`
	Devise             string `json:"devise,omitempty" validate:"omitempty,oneof=FCFA EUR"`
	ConditionsPaiement string `json:"conditions_paiement,omitempty"`
}

// UpdateSupplierRequest body pour PUT /api/fournisseurs/:id.
type UpdateSupplierRequest struct {
	Nom                *string `json:"nom,omitempty"`
	NumeroCC           *string `json:"numero_cc,omitempty"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Telephone          *string `json:"telephone,omitempty"`
	Adresse            *string `json:"adresse,omitempty"`
	Devise             *string `json:"devise,omitempty" validate:"omitempty,oneof=FCFA EUR"`
	ConditionsPaiement *string `json:"conditions_paiement,omitempty"`
}

// SupplierResponse fiche fournisseur dans les réponses.
type SupplierResponse struct {
	ID                 string `json:"fournisseur_id"`
	Nom                string `json:"nom"`
	NumeroCC           string `json:"numero_cc,omitempty"`
	Email              string `json:"email,omitempty"`
	Telephone          string `json:"telephone,omitempty"`
	Adresse            string `json:"adresse,omitempty"`
	Devise             string `json:"devise"`
	ConditionsPaiement string `json:"conditions_paiement,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}
