package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest venta completa desde el panel de caja.
// El subtotal llega ya convertido en ambas monedas; el servidor no calcula la tasa.
type RegisterSaleRequest struct {
	ClienteNombre   string          `json:"cliente_nombre"`
	ClienteCedula   string          `json:"cliente_cedula"`
	ClienteTelefono string          `json:"cliente_telefono"`
	ClienteEmail    string          `json:"cliente_email"`
	Marca           string          `json:"marca"`
	Talla           string          `json:"talla"`
	Cantidad        int             `json:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	TotalDolar      decimal.Decimal `json:"total_dolar"`
	TotalBs         decimal.Decimal `json:"total_bs"`
	TipoPago        string          `json:"tipo_pago"`
}

// SimpleSaleRequest venta rápida: solo cabecera, cliente opcional.
type SimpleSaleRequest struct {
	IDCliente *int64          `json:"id_cliente"`
	Monto     decimal.Decimal `json:"monto"`
}

// SaleCreatedResponse resultado de registrar una venta.
type SaleCreatedResponse struct {
	Ok      bool  `json:"ok"`
	IDVenta int64 `json:"id_venta"`
}

// ClientResponse cliente encontrado por cédula.
type ClientResponse struct {
	IDCliente int64  `json:"id_cliente"`
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
}

// SaleResponse cabecera de venta.
type SaleResponse struct {
	IDVenta    int64           `json:"id_venta"`
	FechaHora  time.Time       `json:"fecha_hora"`
	TotalVenta decimal.Decimal `json:"total_venta"`
	TotalBs    decimal.Decimal `json:"total_bs"`
	TipoPago   string          `json:"tipo_pago"`
	IDUsuario  int64           `json:"id_usuario"`
	IDCliente  *int64          `json:"id_cliente"`
}
