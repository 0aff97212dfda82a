package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"route-consolidation-service/internal/adapters/repositories"
	"route-consolidation-service/internal/config"
	"route-consolidation-service/internal/platform/db"
)

// dbtool initializes the schema and seeds delivery records against a
// shared Postgres instance.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/deliveries.json")
	log.Println("Seeding deliveries...")
	if err := repositories.SeedFromJSON(conn, "pgx", seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
