package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frankUCLA/modasoft/internal/domain/repository"
)

// TxRunner ejecuta flujos multi-paso dentro de una transacción. Los repos que
// recibe cada callback quedan atados a la tx; si el callback falla, rollback
// de todo.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale transacción del registro de venta: cliente, cabecera y detalle
// se confirman juntos o no se confirma ninguno.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	clients repository.ClientRepository,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	sizes repository.SizeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: no se pudo iniciar la transacción: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	err = fn(
		NewClientRepository(tx),
		NewSaleRepository(tx),
		NewProductRepository(tx),
		NewSizeRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: no se pudo confirmar la transacción: %w", err)
	}
	return nil
}

// RunProduct transacción del registro completo de producto con su inventario
// por talla.
func (r *TxRunner) RunProduct(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: no se pudo iniciar la transacción: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: no se pudo confirmar la transacción: %w", err)
	}
	return nil
}
