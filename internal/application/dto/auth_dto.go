package dto

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// LoginResponse sesión establecida; Rol es la etiqueta legible ("Administrador"/"Caja").
type LoginResponse struct {
	Ok      bool   `json:"ok"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

// StatusResponse estado del servidor y de la sesión actual.
// Usuario es null cuando no hay sesión; Rol es "Invitado" en ese caso.
type StatusResponse struct {
	Servidor bool    `json:"servidor"`
	BD       bool    `json:"bd"`
	Usuario  *string `json:"usuario"`
	Rol      string  `json:"rol"`
}
