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

// SaleRepository implementación PostgreSQL del puerto de ventas.
type SaleRepository struct {
	db Querier
}

// NewSaleRepository construye el repositorio de ventas.
func NewSaleRepository(db Querier) repository.SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, s *entity.Sale) error {
	const q = `
		INSERT INTO ventas (fecha_hora, total_venta, total_bs, tipo_pago, id_usuario, id_cliente)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_venta`

	err := r.db.QueryRow(ctx, q,
		s.FechaHora, s.TotalVenta, s.TotalBs, s.TipoPago, s.IDUsuario, s.IDCliente,
	).Scan(&s.ID)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: crear venta: %w", err)
	}
	return nil
}

func (r *SaleRepository) CreateDetail(ctx context.Context, d *entity.SaleDetail) error {
	const q = `
		INSERT INTO detalle_venta (id_venta, id_producto, id_talla, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_detalle`

	err := r.db.QueryRow(ctx, q,
		d.IDVenta, d.IDProducto, d.IDTalla, d.Cantidad, d.PrecioUnitario,
	).Scan(&d.ID)
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: crear detalle de venta: %w", err)
	}
	return nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	const q = `
		SELECT id_venta, fecha_hora, total_venta, COALESCE(total_bs, 0), tipo_pago, id_usuario, id_cliente
		FROM ventas
		WHERE id_venta = $1`

	var s entity.Sale
	err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.FechaHora, &s.TotalVenta, &s.TotalBs, &s.TipoPago, &s.IDUsuario, &s.IDCliente)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar venta: %w", err)
	}
	return &s, nil
}

func (r *SaleRepository) DetailBySale(ctx context.Context, saleID int64) (*entity.SaleDetail, error) {
	const q = `
		SELECT id_detalle, id_venta, id_producto, id_talla, cantidad, precio_unitario
		FROM detalle_venta
		WHERE id_venta = $1
		ORDER BY id_detalle
		LIMIT 1`

	var d entity.SaleDetail
	err := r.db.QueryRow(ctx, q, saleID).Scan(
		&d.ID, &d.IDVenta, &d.IDProducto, &d.IDTalla, &d.Cantidad, &d.PrecioUnitario)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: detalle de venta: %w", err)
	}
	return &d, nil
}
