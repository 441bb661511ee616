// seed crea el usuario CEO inicial si no existe todavía.
//
// Uso: go run ./cmd/seed
// Lee SEED_CEO_EMAIL, SEED_CEO_PASSWORD y SEED_CEO_NAME del entorno
// (con valores por defecto pensados solo para desarrollo).
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/infrastructure/postgres"
	"github.com/tu-usuario/fruit-track/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	email := strings.ToLower(strings.TrimSpace(envOr("SEED_CEO_EMAIL", "ceo@fruit-track.local")))
	password := envOr("SEED_CEO_PASSWORD", "changeme123")
	name := envOr("SEED_CEO_NAME", "CEO")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar CEO existente: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El usuario CEO ya existe (%s), nada que hacer\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	ceo := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleCEO,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ceo); err != nil {
		fmt.Fprintf(os.Stderr, "Crear CEO: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario CEO creado: %s (id %s)\n", ceo.Email, ceo.ID)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
