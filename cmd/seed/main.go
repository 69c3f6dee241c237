package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/anujyadav2244/cricriser/config"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

// Seeds a verified admin account for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@cricriser.local"
	password := "password123"
	name := "Demo Admin"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO admins (name, email, password_hash, is_verified)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, is_verified = true
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)
}
