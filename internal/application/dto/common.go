package dto

// PageRequest pagination des listes.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage applique les valeurs par défaut si Limit/Offset sont à zéro.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PeriodRequest fenêtre temporelle optionnelle (dates au format 2006-01-02).
// Vide = mois calendaire en cours jusqu'à aujourd'hui.
type PeriodRequest struct {
	From string `query:"du" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"au" validate:"omitempty,datetime=2006-01-02"`
}

// ErrorResponse corps d'erreur HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
