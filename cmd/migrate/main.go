package main

import (
	"context"
	"log"
	"os"

	"questgen/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Applies the history schema to a PostgreSQL database. The server runs the
// same migrations at startup; this binary provisions a database ahead of
// deploy or from CI.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if len(os.Args) > 1 {
		databaseURL = os.Args[1]
	}
	if databaseURL == "" {
		log.Fatal("Usage: migrate <database_url> (or set DATABASE_URL)")
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	runner := migration.NewRunner()
	log.Printf("Applying schema version %s", runner.Version())
	if err := runner.Run(context.Background(), db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Printf("Migration complete: questions and worksheets tables ready")
}
