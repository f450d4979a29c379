// Siembra datos demo: tres usuarios (uno por rol) y tres items de catálogo.
// Re-ejecutar es seguro: los usuarios se upsertan sin rotar el hash y los
// items duplicados por SKU se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invorder-api/internal/domain"
	"github.com/jhoicas/invorder-api/internal/domain/entity"
	"github.com/jhoicas/invorder-api/internal/infrastructure/postgres"
	"github.com/jhoicas/invorder-api/pkg/config"
)

const (
	demoPassword = "Passw0rd!"
	bcryptCost   = 10
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

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	users := []*entity.User{
		{ID: uuid.New().String(), Email: "manager@demo.local", Name: "Marta Manager", Role: entity.RoleManager, PasswordHash: string(hash)},
		{ID: uuid.New().String(), Email: "employee@demo.local", Name: "Elena Employee", Role: entity.RoleEmployee, PasswordHash: string(hash)},
		{ID: uuid.New().String(), Email: "purchaser@demo.local", Name: "Pedro Purchaser", Role: entity.RolePurchaser, PasswordHash: string(hash)},
	}
	for _, u := range users {
		if err := userRepo.UpsertByEmail(u); err != nil {
			fmt.Fprintf(os.Stderr, "sembrar usuario %s: %v\n", u.Email, err)
			os.Exit(1)
		}
		fmt.Printf("✓ usuario %s (%s)\n", u.Email, u.Role)
	}

	items := []*entity.Item{
		{ID: uuid.New().String(), SKU: "SKU-001", Name: "Blue Pen", Unit: "pcs", Cost: decimal.RequireFromString("0.50"), InStock: 100, Active: true},
		{ID: uuid.New().String(), SKU: "SKU-002", Name: "Notebook A5", Unit: "pcs", Cost: decimal.RequireFromString("2.10"), InStock: 50, Active: true},
		{ID: uuid.New().String(), SKU: "SKU-003", Name: "Packing Tape", Unit: "roll", Cost: decimal.RequireFromString("1.30"), InStock: 20, Active: true},
	}
	for _, it := range items {
		if err := itemRepo.Create(it); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				fmt.Printf("- item %s ya existe, omitido\n", it.SKU)
				continue
			}
			fmt.Fprintf(os.Stderr, "sembrar item %s: %v\n", it.SKU, err)
			os.Exit(1)
		}
		fmt.Printf("✓ item %s %s\n", it.SKU, it.Name)
	}

	fmt.Println("seed completado")
}
