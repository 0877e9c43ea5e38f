package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/princesinghgemini-dotcom/veto/internal/config"
)

func strEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Seeds an admin user and a small sample catalog so the admin frontend has
// something to show on a fresh database. Idempotent; safe to run twice.
func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("pgxpool: %v", err)
	}
	defer pool.Close()

	adminUser := strEnv("SEED_ADMIN_USERNAME", "admin")
	adminPass := strEnv("SEED_ADMIN_PASSWORD", "admin-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, uuid.New(), adminUser, string(hash)); err != nil {
		log.Fatalf("upsert admin: %v", err)
	}

	upsertCategory := func(name, description string) uuid.UUID {
		id := uuid.New()
		if _, err := pool.Exec(ctx, `
			INSERT INTO product_categories (id, name, description)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM product_categories WHERE name = $2)
		`, id, name, description); err != nil {
			log.Fatalf("upsert category %s: %v", name, err)
		}
		if err := pool.QueryRow(ctx,
			`SELECT id FROM product_categories WHERE name = $1`, name).Scan(&id); err != nil {
			log.Fatalf("select category %s: %v", name, err)
		}
		return id
	}

	antibiotics := upsertCategory("Antibiotics", "Antibacterial treatments")
	upsertCategory("Antiparasitics", "Deworming and ectoparasite control")
	upsertCategory("Vaccines", "Preventive vaccines")

	var productID uuid.UUID
	if err := pool.QueryRow(ctx, `
		INSERT INTO products (id, category_id, name, description, manufacturer)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $3)
		RETURNING id
	`, uuid.New(), antibiotics, "Oxytetracycline LA", "Long-acting broad-spectrum antibiotic", "VetPharm").Scan(&productID); err != nil {
		if err := pool.QueryRow(ctx,
			`SELECT id FROM products WHERE name = $1`, "Oxytetracycline LA").Scan(&productID); err != nil {
			log.Fatalf("select product: %v", err)
		}
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO product_variants (id, product_id, sku, name, unit_size, unit_type, base_price)
		VALUES ($1, $2, 'OXY-LA-100', '100ml bottle', '100', 'ml', 12.50)
		ON CONFLICT (sku) DO NOTHING
	`, uuid.New(), productID); err != nil {
		log.Fatalf("insert variant: %v", err)
	}

	fmt.Println()
	fmt.Println("Seed done.")
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Admin: %s / %s\n", adminUser, adminPass)
	fmt.Println("Categories: Antibiotics, Antiparasitics, Vaccines")
	fmt.Println("Sample product: Oxytetracycline LA (SKU OXY-LA-100)")
	fmt.Println("--------------------------------------------------")
}
