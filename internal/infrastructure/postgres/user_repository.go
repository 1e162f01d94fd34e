package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/internal/domain/repository"
)

// UserRepository implementación PostgreSQL del puerto de usuarios.
type UserRepository struct {
	db Querier
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository(db Querier) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsuario(ctx context.Context, usuario string) (*entity.User, error) {
	const q = `
		SELECT id_usuario, usuario, password_hash, rol
		FROM users
		WHERE usuario = $1`

	var u entity.User
	var rol string
	err := r.db.QueryRow(ctx, q, usuario).Scan(&u.ID, &u.Usuario, &u.PasswordHash, &rol)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar usuario: %w", err)
	}
	parsed, err := entity.ParseRole(rol)
	if err != nil {
		return nil, fmt.Errorf("postgres: usuario %q: %w", usuario, err)
	}
	u.Rol = parsed
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	const q = `
		INSERT INTO users (usuario, password_hash, rol)
		VALUES ($1, $2, $3)
		RETURNING id_usuario`

	err := r.db.QueryRow(ctx, q, u.Usuario, u.PasswordHash, string(u.Rol)).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("postgres: crear usuario: %w", err)
	}
	return nil
}
