package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.TokenBlocklist = (*Blocklist)(nil)

const keyPrefix = "revoked_jti:"

// Blocklist implementa el set de tokens revocados sobre Redis.
// Cada jti revocado se guarda con el TTL restante del token; Redis lo expira
// solo, así el set no crece sin límite.
type Blocklist struct {
	rdb *redis.Client
}

// NewBlocklist conecta a Redis con la URL dada y verifica la conexión.
func NewBlocklist(url string) (*Blocklist, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &Blocklist{rdb: rdb}, nil
}

// Revoke registra el jti como revocado hasta que el token habría expirado.
func (b *Blocklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.rdb.Set(ctx, keyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked consulta si el jti está en el set de revocados.
func (b *Blocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

// Close cierra la conexión con Redis.
func (b *Blocklist) Close() error {
	return b.rdb.Close()
}
