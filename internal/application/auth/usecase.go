// Package auth contient les cas d'usage d'authentification: inscription et login.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
	"github.com/ecopumpafrik/gestion-api/pkg/jwt"
)

// JWTConfig configuration pour la génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase cas d'usage d'authentification.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construit le cas d'usage d'auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register crée un utilisateur: hash bcrypt du mot de passe puis persistance.
// Retourne domain.ErrEmailAlreadyExists si l'email est déjà pris.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCommercial
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nom:          in.Nom,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return authResponse(token, user), nil
}

// Login vérifie email/mot de passe et retourne un JWT signé.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return authResponse(token, user), nil
}

func authResponse(token string, u *entity.User) *dto.AuthResponse {
	return &dto.AuthResponse{
		Token: token,
		ID:    u.ID,
		Nom:   u.Nom,
		Email: u.Email,
		Role:  u.Role,
	}
}
