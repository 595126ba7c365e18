package dto

// RegisterRequest body pour POST /api/auth/register.
type RegisterRequest struct {
	Nom      string `json:"nom" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin comptable commercial"`
}

// LoginRequest body pour POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse token JWT et profil minimal.
type AuthResponse struct {
	Token string `json:"token"`
	ID    string `json:"user_id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
