package repository

import (
	"context"

	"github.com/frankUCLA/modasoft/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	FindByUsuario(ctx context.Context, usuario string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
