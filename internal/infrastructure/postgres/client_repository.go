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

// ClientRepository implementación PostgreSQL del puerto de clientes.
type ClientRepository struct {
	db Querier
}

// NewClientRepository construye el repositorio de clientes.
func NewClientRepository(db Querier) repository.ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id_cliente, nombre, cedula, COALESCE(telefono, ''), COALESCE(email, '')`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Nombre, &c.Cedula, &c.Telefono, &c.Email)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) GetByNombreAndCedula(ctx context.Context, nombre, cedula string) (*entity.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clientes WHERE nombre = $1 AND cedula = $2`

	c, err := scanClient(r.db.QueryRow(ctx, q, nombre, cedula))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar cliente: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) GetByCedula(ctx context.Context, cedula string) (*entity.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clientes WHERE cedula = $1 ORDER BY id_cliente LIMIT 1`

	c, err := scanClient(r.db.QueryRow(ctx, q, cedula))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar cliente por cédula: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clientes WHERE id_cliente = $1`

	c, err := scanClient(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: buscar cliente por id: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	// ON CONFLICT en vez de dejar saltar el 23505: un unique violation crudo
	// aborta la transacción en curso y la relectura del ganador fallaría con
	// 25P02. Con DO NOTHING el conflicto no devuelve fila y la tx sigue viva.
	const q = `
		INSERT INTO clientes (nombre, cedula, telefono, email)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (nombre, cedula) DO NOTHING
		RETURNING id_cliente`

	err := r.db.QueryRow(ctx, q, c.Nombre, c.Cedula, c.Telefono, c.Email).Scan(&c.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("postgres: crear cliente: %w", err)
	}
	return nil
}
