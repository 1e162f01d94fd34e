package dto

// OkResponse respuesta mínima de mutaciones: {ok:true}.
type OkResponse struct {
	Ok bool `json:"ok"`
}

// ErrorResponse cuerpo de error HTTP: {ok:false, error:"…"}.
type ErrorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}
