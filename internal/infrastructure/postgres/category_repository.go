package postgres

import (
	"context"
	"fmt"

	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/internal/domain/repository"
)

// CategoryRepository implementación PostgreSQL del puerto de categorías.
type CategoryRepository struct {
	db Querier
}

// NewCategoryRepository construye el repositorio de categorías.
func NewCategoryRepository(db Querier) repository.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, filter string, limit int) ([]*entity.Category, error) {
	const q = `
		SELECT id_categoria, nombre
		FROM categorias
		WHERE ($1 = '' OR unaccent(nombre) ILIKE '%' || $1 || '%')
		ORDER BY nombre
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: listar categorías: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("postgres: leer categoría: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	const q = `
		INSERT INTO categorias (nombre)
		VALUES ($1)
		RETURNING id_categoria`

	err := r.db.QueryRow(ctx, q, c.Nombre).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("postgres: crear categoría: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categorias WHERE id_categoria = $1`, id)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: eliminar categoría: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
