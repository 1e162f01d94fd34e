package postgres

import (
	"context"
	"fmt"

	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/internal/domain/repository"
)

// SupplierRepository implementación PostgreSQL del puerto de proveedores.
type SupplierRepository struct {
	db Querier
}

// NewSupplierRepository construye el repositorio de proveedores.
func NewSupplierRepository(db Querier) repository.SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) List(ctx context.Context, filter string, limit int) ([]*entity.Supplier, error) {
	const q = `
		SELECT id_proveedor, nombre, COALESCE(contacto, ''), COALESCE(telefono, '')
		FROM proveedores
		WHERE ($1 = '' OR unaccent(nombre) ILIKE '%' || $1 || '%')
		ORDER BY nombre
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: listar proveedores: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Contacto, &s.Telefono); err != nil {
			return nil, fmt.Errorf("postgres: leer proveedor: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SupplierRepository) Create(ctx context.Context, s *entity.Supplier) error {
	const q = `
		INSERT INTO proveedores (nombre, contacto, telefono)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING id_proveedor`

	err := r.db.QueryRow(ctx, q, s.Nombre, s.Contacto, s.Telefono).Scan(&s.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("postgres: crear proveedor: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM proveedores WHERE id_proveedor = $1`, id)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: eliminar proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
