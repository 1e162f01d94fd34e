package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) FindByUsuario(_ context.Context, usuario string) (*entity.User, error) {
	return r.users[usuario], nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Usuario] = u
	return nil
}

func newRepoWithUser(t *testing.T, usuario, password string, rol entity.Role) *fakeUserRepo {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &fakeUserRepo{users: map[string]*entity.User{
		usuario: {ID: 1, Usuario: usuario, PasswordHash: hash, Rol: rol},
	}}
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newRepoWithUser(t, "admin", "secreto123", entity.RoleAdministrador)
	uc := NewUseCase(repo)

	user, err := uc.Login(context.Background(), "admin", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, entity.RoleAdministrador, user.Rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newRepoWithUser(t, "admin", "secreto123", entity.RoleAdministrador)
	uc := NewUseCase(repo)

	_, err := uc.Login(context.Background(), "admin", "otracosa")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	repo := newRepoWithUser(t, "admin", "secreto123", entity.RoleAdministrador)
	uc := NewUseCase(repo)

	_, err := uc.Login(context.Background(), "fantasma", "secreto123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password malo deben verse iguales desde afuera")
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{users: map[string]*entity.User{}})

	_, err := uc.Login(context.Background(), "", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
