package repository

import (
	"context"

	"github.com/frankUCLA/modasoft/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos e inventario por talla.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// FirstByMarca devuelve el primer producto cuya marca coincide exactamente,
	// o (nil, nil) si no hay ninguno.
	FirstByMarca(ctx context.Context, marca string) (*entity.Product, error)
	List(ctx context.Context, filter string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id int64) error

	AddInventory(ctx context.Context, item *entity.InventoryItem) error
	SizeQuantities(ctx context.Context, productID int64) ([]entity.SizeQuantity, error)
}
