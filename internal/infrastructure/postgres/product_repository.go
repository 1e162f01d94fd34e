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

// ProductRepository implementación PostgreSQL del puerto de productos.
type ProductRepository struct {
	db Querier
}

// NewProductRepository construye el repositorio de productos.
func NewProductRepository(db Querier) repository.ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id_producto, nombre, COALESCE(descripcion, ''), COALESCE(marca, ''),
	precio_venta, inventario, id_categoria, id_proveedor`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Marca,
		&p.PrecioVenta, &p.Inventario, &p.IDCategoria, &p.IDProveedor)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	const q = `
		INSERT INTO productos (nombre, descripcion, marca, precio_venta, inventario, id_categoria, id_proveedor)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING id_producto`

	err := r.db.QueryRow(ctx, q,
		p.Nombre, p.Descripcion, p.Marca, p.PrecioVenta,
		p.Inventario, p.IDCategoria, p.IDProveedor,
	).Scan(&p.ID)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: crear producto: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	q := `SELECT ` + productColumns + ` FROM productos WHERE id_producto = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar producto: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) FirstByMarca(ctx context.Context, marca string) (*entity.Product, error) {
	q := `SELECT ` + productColumns + ` FROM productos WHERE marca = $1 ORDER BY id_producto LIMIT 1`

	p, err := scanProduct(r.db.QueryRow(ctx, q, marca))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar producto por marca: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter string, limit int) ([]*entity.Product, error) {
	q := `
		SELECT ` + productColumns + `
		FROM productos
		WHERE ($1 = '' OR unaccent(nombre) ILIKE '%' || $1 || '%' OR unaccent(marca) ILIKE '%' || $1 || '%')
		ORDER BY id_producto DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: listar productos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: leer producto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	const q = `
		UPDATE productos
		SET nombre = $2, marca = NULLIF($3, ''), inventario = $4,
		    precio_venta = $5, id_categoria = $6, id_proveedor = $7
		WHERE id_producto = $1`

	tag, err := r.db.Exec(ctx, q,
		p.ID, p.Nombre, p.Marca, p.Inventario, p.PrecioVenta, p.IDCategoria, p.IDProveedor)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM productos WHERE id_producto = $1`, id)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: eliminar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) AddInventory(ctx context.Context, item *entity.InventoryItem) error {
	// Upsert: repetir la misma talla en el formulario acumula la cantidad.
	const q = `
		INSERT INTO inventario (id_producto, id_talla, cantidad)
		VALUES ($1, $2, $3)
		ON CONFLICT (id_producto, id_talla)
		DO UPDATE SET cantidad = inventario.cantidad + EXCLUDED.cantidad`

	_, err := r.db.Exec(ctx, q, item.IDProducto, item.IDTalla, item.Cantidad)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: registrar inventario: %w", err)
	}
	return nil
}

func (r *ProductRepository) SizeQuantities(ctx context.Context, productID int64) ([]entity.SizeQuantity, error) {
	const q = `
		SELECT t.nombre, i.cantidad
		FROM inventario i
		JOIN tallas t ON t.id_talla = i.id_talla
		WHERE i.id_producto = $1
		ORDER BY t.id_talla`

	rows, err := r.db.Query(ctx, q, productID)
	if err != nil {
		return nil, fmt.Errorf("postgres: inventario por talla: %w", err)
	}
	defer rows.Close()

	var out []entity.SizeQuantity
	for rows.Next() {
		var sq entity.SizeQuantity
		if err := rows.Scan(&sq.Talla, &sq.Cantidad); err != nil {
			return nil, fmt.Errorf("postgres: leer inventario: %w", err)
		}
		out = append(out, sq)
	}
	return out, rows.Err()
}
