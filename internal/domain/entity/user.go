package entity

// User representa un usuario del sistema. Se aprovisiona fuera de banda
// (seed SQL); no hay endpoint de registro.
type User struct {
	ID           int64
	Usuario      string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          Role
}
