package repository

import (
	"context"

	"github.com/frankUCLA/modasoft/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y su detalle.
// Las ventas solo se insertan y se leen; nunca se actualizan ni se borran.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	CreateDetail(ctx context.Context, d *entity.SaleDetail) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// DetailBySale devuelve la línea de la venta o (nil, nil) si la venta no tiene detalle.
	DetailBySale(ctx context.Context, saleID int64) (*entity.SaleDetail, error)
}
