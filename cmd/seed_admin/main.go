// seed_admin crea la cuenta admin inicial del backoffice.
//
// Uso: go run ./cmd/seed_admin <email> <password> [nombre]
// Idempotente: si el email ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/infrastructure/postgres"
	"github.com/invorya/backoffice-api/pkg/config"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed_admin <email> <password> [nombre]")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]
	name := "Administrador"
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("la cuenta %s ya existe (rol %s), nada que hacer\n", email, existing.Role)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin %s creado (id %s)\n", email, admin.ID)
}
