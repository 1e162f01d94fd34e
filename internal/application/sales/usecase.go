package sales

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/internal/domain/repository"
)

// TxRunner ejecuta el registro de venta dentro de una transacción: los repos
// que recibe el callback están atados a la misma tx y cualquier error la
// revierte completa (incluida la creación implícita del cliente).
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		clients repository.ClientRepository,
		sales repository.SaleRepository,
		products repository.ProductRepository,
		sizes repository.SizeRepository,
	) error) error
}

// Receipt datos ya resueltos para el recibo de una venta.
// ProductoNombre y Talla quedan vacíos si la venta no tiene detalle.
type Receipt struct {
	Sale           *entity.Sale
	Client         *entity.Client
	Detail         *entity.SaleDetail
	ProductoNombre string
	Talla          string
}

// UseCase registro y consulta de ventas.
type UseCase struct {
	tx       TxRunner
	clients  repository.ClientRepository
	sales    repository.SaleRepository
	products repository.ProductRepository
	sizes    repository.SizeRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	tx TxRunner,
	clients repository.ClientRepository,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	sizes repository.SizeRepository,
) *UseCase {
	return &UseCase{tx: tx, clients: clients, sales: sales, products: products, sizes: sizes}
}

// RegisterSale flujo completo de caja, en una sola transacción:
//
//  1. Resolver o crear el cliente por (nombre, cédula).
//  2. Insertar la cabecera de la venta.
//  3. Resolver producto por marca exacta (best-effort).
//  4. Resolver talla por nombre exacto (best-effort).
//  5. Insertar el detalle solo si 3 y 4 resolvieron.
//
// Si la marca o la talla no existen, la venta igual se registra sin detalle.
// Cualquier error de almacenamiento revierte todos los pasos.
func (uc *UseCase) RegisterSale(ctx context.Context, cashierID int64, in dto.RegisterSaleRequest) (int64, error) {
	if strings.TrimSpace(in.ClienteNombre) == "" || strings.TrimSpace(in.ClienteCedula) == "" ||
		strings.TrimSpace(in.Marca) == "" || strings.TrimSpace(in.Talla) == "" || in.Cantidad <= 0 {
		return 0, domain.ErrInvalidInput
	}
	tipoPago := in.TipoPago
	if tipoPago == "" {
		tipoPago = "Efectivo"
	}

	var saleID int64
	err := uc.tx.RunSale(ctx, func(
		clients repository.ClientRepository,
		sales repository.SaleRepository,
		products repository.ProductRepository,
		sizes repository.SizeRepository,
	) error {
		client, err := uc.resolveClient(ctx, clients, in)
		if err != nil {
			return err
		}

		sale := &entity.Sale{
			FechaHora:  time.Now(),
			TotalVenta: in.TotalDolar,
			TotalBs:    in.TotalBs,
			TipoPago:   tipoPago,
			IDUsuario:  cashierID,
			IDCliente:  &client.ID,
		}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		saleID = sale.ID

		product, err := products.FirstByMarca(ctx, in.Marca)
		if err != nil {
			return err
		}
		size, err := sizes.GetByNombre(ctx, in.Talla)
		if err != nil {
			return err
		}
		if product == nil || size == nil {
			return nil // venta sin detalle
		}
		return sales.CreateDetail(ctx, &entity.SaleDetail{
			IDVenta:        saleID,
			IDProducto:     product.ID,
			IDTalla:        size.ID,
			Cantidad:       in.Cantidad,
			PrecioUnitario: in.PrecioUnitario,
		})
	})
	if err != nil {
		return 0, err
	}
	return saleID, nil
}

// resolveClient busca el cliente por (nombre, cédula) y lo crea si no existe.
// Si dos cajas registran el mismo cliente nuevo a la vez, el índice único
// hace perder a una; esa relee la fila ganadora en lugar de duplicar.
func (uc *UseCase) resolveClient(ctx context.Context, clients repository.ClientRepository, in dto.RegisterSaleRequest) (*entity.Client, error) {
	client, err := clients.GetByNombreAndCedula(ctx, in.ClienteNombre, in.ClienteCedula)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}
	client = &entity.Client{
		Nombre:   in.ClienteNombre,
		Cedula:   in.ClienteCedula,
		Telefono: in.ClienteTelefono,
		Email:    in.ClienteEmail,
	}
	err = clients.Create(ctx, client)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return nil, err
	}
	client, err = clients.GetByNombreAndCedula(ctx, in.ClienteNombre, in.ClienteCedula)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrConflict
	}
	return client, nil
}

// SimpleSale venta rápida: solo la cabecera, sin resolución de cliente,
// producto ni talla. El formulario mínimo de caja usa este camino.
func (uc *UseCase) SimpleSale(ctx context.Context, cashierID int64, in dto.SimpleSaleRequest) (int64, error) {
	if in.Monto.IsZero() || in.Monto.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	sale := &entity.Sale{
		FechaHora:  time.Now(),
		TotalVenta: in.Monto,
		TipoPago:   "Efectivo",
		IDUsuario:  cashierID,
		IDCliente:  in.IDCliente,
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// FindClientByCedula busca un cliente por cédula; (nil, nil) si no existe.
func (uc *UseCase) FindClientByCedula(ctx context.Context, cedula string) (*entity.Client, error) {
	if strings.TrimSpace(cedula) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.clients.GetByCedula(ctx, cedula)
}

// GetSale obtiene la cabecera de una venta; (nil, nil) si no existe.
func (uc *UseCase) GetSale(ctx context.Context, id int64) (*entity.Sale, error) {
	return uc.sales.GetByID(ctx, id)
}

// GetReceipt arma los datos del recibo: cabecera, cliente y, si hay detalle,
// los nombres del producto y la talla.
func (uc *UseCase) GetReceipt(ctx context.Context, id int64) (*Receipt, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	r := &Receipt{Sale: sale}
	if sale.IDCliente != nil {
		r.Client, err = uc.clients.GetByID(ctx, *sale.IDCliente)
		if err != nil {
			return nil, err
		}
	}
	r.Detail, err = uc.sales.DetailBySale(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Detail != nil {
		product, err := uc.products.GetByID(ctx, r.Detail.IDProducto)
		if err != nil {
			return nil, err
		}
		if product != nil {
			r.ProductoNombre = product.Nombre
		}
		size, err := uc.sizes.GetByID(ctx, r.Detail.IDTalla)
		if err != nil {
			return nil, err
		}
		if size != nil {
			r.Talla = size.Nombre
		}
	}
	return r, nil
}
