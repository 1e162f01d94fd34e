package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Inventario es la existencia
// global; el desglose por talla vive en la tabla inventario.
type Product struct {
	ID          int64
	Nombre      string
	Descripcion string
	Marca       string
	PrecioVenta decimal.Decimal
	Inventario  int
	IDCategoria int64
	IDProveedor *int64
}

// InventoryItem existencia de un producto en una talla concreta.
type InventoryItem struct {
	IDProducto int64
	IDTalla    int64
	Cantidad   int
}

// SizeQuantity vista de lectura: nombre de talla y cantidad disponible.
type SizeQuantity struct {
	Talla    string
	Cantidad int
}
