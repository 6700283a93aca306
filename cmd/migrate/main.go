// migrate aplica las migraciones SQL del backoffice.
//
// Uso: go run ./cmd/migrate <up|down> [pasos]
// Lee la conexión de la misma configuración que el API (DATABASE_URL o DB_*).
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/invorya/backoffice-api/pkg/config"
)

const migrationsPath = "file://internal/infrastructure/postgres/migrations"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: migrate <up|down> [pasos]")
		os.Exit(1)
	}
	direction := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.New(migrationsPath, cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir migraciones: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	steps := 0
	if len(os.Args) > 2 {
		steps, err = strconv.Atoi(os.Args[2])
		if err != nil || steps < 1 {
			fmt.Fprintln(os.Stderr, "pasos debe ser un entero positivo")
			os.Exit(1)
		}
	}

	switch direction {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Steps(-1) // down sin pasos retrocede solo una
		}
	default:
		fmt.Fprintf(os.Stderr, "dirección desconocida: %s\n", direction)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintf(os.Stderr, "migración: %v\n", err)
		os.Exit(1)
	}

	version, dirty, _ := m.Version()
	fmt.Printf("migraciones al día (versión %d, dirty=%v)\n", version, dirty)
}
