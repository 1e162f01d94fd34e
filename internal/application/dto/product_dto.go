package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta rápida de producto (panel admin).
// IDCategoria en cero usa la categoría por defecto.
type CreateProductRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	IDCategoria int64           `json:"id_categoria"`
}

// UpdateProductRequest edición de producto.
type UpdateProductRequest struct {
	Marca       string          `json:"marca"`
	Nombre      string          `json:"nombre"`
	Inventario  int             `json:"inventario"`
	Precio      decimal.Decimal `json:"precio"`
	IDCategoria int64           `json:"id_categoria"`
	IDProveedor *int64          `json:"id_proveedor"`
}

// SizeQuantityInput cantidad inicial por talla en el registro completo.
type SizeQuantityInput struct {
	IDTalla  int64 `json:"id_talla"`
	Cantidad int   `json:"cantidad"`
}

// RegisterProductRequest registro completo de producto con inventario por talla.
type RegisterProductRequest struct {
	Marca      string              `json:"marca"`
	Categoria  int64               `json:"categoria"`
	Proveedor  int64               `json:"proveedor"`
	Nombre     string              `json:"nombre"`
	Precio     decimal.Decimal     `json:"precio"`
	Inventario int                 `json:"inventario"`
	Cantidades []SizeQuantityInput `json:"cantidades"`
}

// ProductSummary fila del listado admin; Tallas es el desglose "S=2 M=1".
type ProductSummary struct {
	IDProducto  int64           `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Marca       string          `json:"marca"`
	Inventario  int             `json:"inventario"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Tallas      string          `json:"tallas"`
}

// ProductResponse detalle de producto.
type ProductResponse struct {
	IDProducto  int64           `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Marca       string          `json:"marca"`
	Inventario  int             `json:"inventario"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	IDCategoria int64           `json:"id_categoria"`
	IDProveedor *int64          `json:"id_proveedor"`
}
