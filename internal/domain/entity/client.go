package entity

// Client cliente de la tienda. Se identifica por el par (nombre, cédula);
// se crea implícitamente la primera vez que una venta lo nombra.
type Client struct {
	ID       int64
	Nombre   string
	Cedula   string
	Telefono string
	Email    string
}
