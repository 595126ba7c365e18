package entity

import "time"

// Rôles valides pour User.
const (
	RoleAdmin      = "admin"
	RoleComptable  = "comptable"
	RoleCommercial = "commercial"
)

// User représente un utilisateur du back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair après persistance
	Nom          string
	Role         string // admin, comptable, commercial
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
