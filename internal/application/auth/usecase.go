package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/internal/domain/repository"
)

// UseCase verificación de credenciales. La creación de usuarios es
// aprovisionamiento fuera de banda; aquí solo se verifica.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// Login verifica usuario/password contra el hash almacenado.
// Usuario inexistente y password incorrecto devuelven el mismo error para
// no filtrar qué usuarios existen. No hay throttling ni lockout.
func (uc *UseCase) Login(ctx context.Context, usuario, password string) (*entity.User, error) {
	if usuario == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.FindByUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// HashPassword genera el hash bcrypt para aprovisionar usuarios (seed).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
