package repository

import (
	"context"
	"time"
)

// TokenBlocklist define el puerto para el set de tokens revocados (logout).
// La implementación debe ser un store compartido y persistente (Redis): un set
// solo en memoria rompe la revocación cuando corre más de una instancia del servidor.
// Cada entrada expira sola cuando el token subyacente habría expirado (TTL).
type TokenBlocklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
