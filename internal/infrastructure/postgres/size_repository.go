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

// SizeRepository implementación PostgreSQL del puerto de tallas.
type SizeRepository struct {
	db Querier
}

// NewSizeRepository construye el repositorio de tallas.
func NewSizeRepository(db Querier) repository.SizeRepository {
	return &SizeRepository{db: db}
}

const sizeColumns = `id_talla, nombre,
	COALESCE(ajuste, ''), COALESCE(pecho, ''), COALESCE(cintura, ''),
	COALESCE(cadera, ''), COALESCE(largo, '')`

func scanSize(row pgx.Row) (*entity.Size, error) {
	var s entity.Size
	err := row.Scan(&s.ID, &s.Nombre, &s.Ajuste, &s.Pecho, &s.Cintura, &s.Cadera, &s.Largo)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SizeRepository) List(ctx context.Context, filter string, limit int) ([]*entity.Size, error) {
	q := `
		SELECT ` + sizeColumns + `
		FROM tallas
		WHERE ($1 = '' OR unaccent(nombre) ILIKE '%' || $1 || '%')
		ORDER BY id_talla
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: listar tallas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Size
	for rows.Next() {
		s, err := scanSize(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: leer talla: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SizeRepository) GetByID(ctx context.Context, id int64) (*entity.Size, error) {
	q := `SELECT ` + sizeColumns + ` FROM tallas WHERE id_talla = $1`

	s, err := scanSize(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar talla: %w", err)
	}
	return s, nil
}

func (r *SizeRepository) GetByNombre(ctx context.Context, nombre string) (*entity.Size, error) {
	q := `SELECT ` + sizeColumns + ` FROM tallas WHERE nombre = $1 LIMIT 1`

	s, err := scanSize(r.db.QueryRow(ctx, q, nombre))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar talla por nombre: %w", err)
	}
	return s, nil
}

func (r *SizeRepository) Create(ctx context.Context, s *entity.Size) error {
	const q = `
		INSERT INTO tallas (nombre, ajuste, pecho, cintura, cadera, largo)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING id_talla`

	err := r.db.QueryRow(ctx, q, s.Nombre, s.Ajuste, s.Pecho, s.Cintura, s.Cadera, s.Largo).Scan(&s.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("postgres: crear talla: %w", err)
	}
	return nil
}

func (r *SizeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tallas WHERE id_talla = $1`, id)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: eliminar talla: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
