package entity

// Category categoría de producto (referencia simple).
type Category struct {
	ID     int64
	Nombre string
}

// Supplier proveedor de mercancía.
type Supplier struct {
	ID       int64
	Nombre   string
	Contacto string
	Telefono string
}

// Size talla de ropa con sus medidas descriptivas (todas opcionales).
type Size struct {
	ID      int64
	Nombre  string
	Ajuste  string
	Pecho   string
	Cintura string
	Cadera  string
	Largo   string
}
