package repository

import (
	"context"

	"github.com/frankUCLA/modasoft/internal/domain/entity"
)

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	// GetByNombreAndCedula busca por el par exacto (nombre, cédula); (nil, nil) si no existe.
	GetByNombreAndCedula(ctx context.Context, nombre, cedula string) (*entity.Client, error)
	GetByCedula(ctx context.Context, cedula string) (*entity.Client, error)
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	// Create inserta el cliente y asigna el ID generado. Si el par
	// (nombre, cédula) ya existe devuelve ErrDuplicate sin invalidar la
	// transacción en curso, para que el llamador pueda releer al ganador.
	Create(ctx context.Context, c *entity.Client) error
}
