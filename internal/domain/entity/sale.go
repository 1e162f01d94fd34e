package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. Nunca se actualiza ni se elimina.
type Sale struct {
	ID         int64
	FechaHora  time.Time
	TotalVenta decimal.Decimal // USD
	TotalBs    decimal.Decimal // bolívares, convertido por el llamador
	TipoPago   string
	IDUsuario  int64 // cajero que registró la venta
	IDCliente  *int64
}

// SaleDetail línea de venta; cero o una por venta en el flujo actual.
type SaleDetail struct {
	ID             int64
	IDVenta        int64
	IDProducto     int64
	IDTalla        int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
}
