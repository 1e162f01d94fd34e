package entity

import "fmt"

// Role es la enumeración cerrada de roles del sistema. El gate RBAC compara
// valores de este tipo; no hay códigos numéricos ni comparaciones ad-hoc.
type Role string

const (
	RoleAdministrador Role = "administrador"
	RoleCaja          Role = "caja"
)

// ParseRole valida un rol serializado (sesión o DB).
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrador:
		return RoleAdministrador, nil
	case RoleCaja:
		return RoleCaja, nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// Label devuelve la etiqueta legible del rol para las respuestas de la API.
func (r Role) Label() string {
	switch r {
	case RoleAdministrador:
		return "Administrador"
	case RoleCaja:
		return "Caja"
	}
	return "Invitado"
}
