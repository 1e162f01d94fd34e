// Package session implementa la sesión firmada que viaja en una cookie:
// un JWT HS256 con la identidad y el rol del usuario autenticado. No hay
// estado de sesión en el servidor; la firma y la expiración son la única
// fuente de verdad.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más la identidad de la sesión.
// Rol viaja en el token para que el gate RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64  `json:"user_id"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"` // "administrador" | "caja"
}

// Data es la vista ya validada de una sesión activa.
type Data struct {
	UserID  int64
	Usuario string
	Rol     string
}

// Manager emite y valida tokens de sesión.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewManager construye el manager. ttlMinutes define la vida de la sesión.
func NewManager(secret, issuer string, ttlMinutes int) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("session: secret vacío")
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		issuer: issuer,
	}, nil
}

// TTL devuelve la duración de la sesión (también usada para MaxAge de la cookie).
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue genera un token de sesión firmado para el usuario.
func (m *Manager) Issue(userID int64, usuario, rol string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    m.issuer,
			Subject:   usuario,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:  userID,
		Usuario: usuario,
		Rol:     rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse valida el token y devuelve la sesión. Retorna error si el token es
// inválido, expirado o tiene firma incorrecta.
func (m *Manager) Parse(tokenString string) (*Data, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Data{UserID: claims.UserID, Usuario: claims.Usuario, Rol: claims.Rol}, nil
}
