package repository

import (
	"context"

	"github.com/frankUCLA/modasoft/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías.
// Create asigna el ID generado por la base de datos a la entidad.
type CategoryRepository interface {
	List(ctx context.Context, filter string, limit int) ([]*entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	List(ctx context.Context, filter string, limit int) ([]*entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id int64) error
}

// SizeRepository puerto de persistencia para tallas.
type SizeRepository interface {
	List(ctx context.Context, filter string, limit int) ([]*entity.Size, error)
	GetByID(ctx context.Context, id int64) (*entity.Size, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Size, error)
	Create(ctx context.Context, s *entity.Size) error
	Delete(ctx context.Context, id int64) error
}
