// Aplica las migraciones SQL de internal/infrastructure/postgres/migrations
// en orden lexicográfico. Idempotente: los scripts usan IF NOT EXISTS.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jhoicas/invorder-api/internal/infrastructure/postgres"
	"github.com/jhoicas/invorder-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	root, err := findModuleRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	dir := filepath.Join(root, "internal", "infrastructure", "postgres", "migrations")

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar migraciones: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "sin migraciones en %s\n", dir)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "leer %s: %v\n", f, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			fmt.Fprintf(os.Stderr, "aplicar %s: %v\n", filepath.Base(f), err)
			os.Exit(1)
		}
		fmt.Printf("✓ %s\n", filepath.Base(f))
	}
	fmt.Println("migraciones aplicadas")
}

// findModuleRoot sube directorios hasta encontrar go.mod, para que el comando
// funcione desde cualquier subdirectorio del repo.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod no encontrado subiendo desde el directorio actual")
		}
		dir = parent
	}
}
