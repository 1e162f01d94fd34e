package dto

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Nombre string `json:"nombre"`
}

// CategoryResponse fila de categoría.
type CategoryResponse struct {
	IDCategoria int64  `json:"id_categoria"`
	Nombre      string `json:"nombre"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
	Telefono string `json:"telefono"`
}

// SupplierResponse fila de proveedor.
type SupplierResponse struct {
	IDProveedor int64  `json:"id_proveedor"`
	Nombre      string `json:"nombre"`
	Contacto    string `json:"contacto"`
	Telefono    string `json:"telefono"`
}

// CreateSizeRequest alta de talla con sus medidas opcionales.
type CreateSizeRequest struct {
	Nombre  string `json:"nombre"`
	Ajuste  string `json:"ajuste"`
	Pecho   string `json:"pecho"`
	Cintura string `json:"cintura"`
	Cadera  string `json:"cadera"`
	Largo   string `json:"largo"`
}

// SizeResponse fila de talla.
type SizeResponse struct {
	IDTalla int64  `json:"id_talla"`
	Nombre  string `json:"nombre"`
	Ajuste  string `json:"ajuste,omitempty"`
	Pecho   string `json:"pecho,omitempty"`
	Cintura string `json:"cintura,omitempty"`
	Cadera  string `json:"cadera,omitempty"`
	Largo   string `json:"largo,omitempty"`
}
