package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopumpafrik/gestion-api/internal/application/auth"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	pkgjwt "github.com/ecopumpafrik/gestion-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // clé: email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if r.users[u.Email] != nil {
		return domain.ErrEmailAlreadyExists
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

var testCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "gestion-api-test",
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Nom:      "Aminata Koné",
		Email:    "a.kone@ecopumpafrik.com",
		Password: "mot-de-passe-solide",
	}
}

func TestRegister_RoleCommercialParDefaut(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testCfg)

	resp, err := uc.Register(registerRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCommercial, resp.Role)
	assert.NotEmpty(t, resp.Token)

	userID, role, err := pkgjwt.Parse(testCfg.Secret, resp.Token)
	require.NoError(t, err, "le token émis doit se vérifier avec le même secret")
	assert.Equal(t, resp.ID, userID)
	assert.Equal(t, entity.RoleCommercial, role)
}

func TestRegister_EmailDejaPris(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_MotDePasseJamaisEnClair(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testCfg)

	req := registerRequest()
	_, err := uc.Register(req)
	require.NoError(t, err)

	stored := repo.users[req.Email]
	require.NotNil(t, stored)
	assert.NotEqual(t, req.Password, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, req.Password)
}

func TestLogin_CredentialsValides(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testCfg)

	req := registerRequest()
	_, err := uc.Register(req)
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: req.Email, Password: req.Password})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, req.Email, resp.Email)
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testCfg)

	req := registerRequest()
	_, err := uc.Register(req)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: req.Email, Password: "autre-chose"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UtilisateurInconnu(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "inconnu@ecopumpafrik.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
