package main

import (
	"context"
	"log"
	"os"

	"questgen/adapters/excel"
	"questgen/adapters/memory"
	"questgen/adapters/postgres"
	"questgen/adapters/rng"
	"questgen/internal/bankkit"
	"questgen/internal/config"
	"questgen/internal/errors"
	"questgen/internal/migration"
	"questgen/ports"
	"questgen/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	// Run migrations
	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

// selectBankPort picks the context bank source: the workbook files when they
// exist under the data directory, otherwise the built-in bank.
func selectBankPort(appConfig *config.Config) ports.BankPort {
	bankPath := appConfig.ContextBankPath()
	if _, err := os.Stat(bankPath); err != nil {
		log.Printf("No context bank workbook at %s, using built-in contexts", bankPath)
		return bankkit.NewPort()
	}

	masterPath := appConfig.MasterSourcePath()
	if _, err := os.Stat(masterPath); err != nil {
		masterPath = ""
	}

	log.Printf("Using context bank workbook: %s", bankPath)
	return excel.NewBankReader(bankPath, masterPath)
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// History persistence: Postgres when configured, bounded memory otherwise
	var questions ports.QuestionRepository
	var worksheets ports.WorksheetRepository
	if appConfig.HasDatabase() {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer db.Close()
		questions = postgres.NewQuestionRepository(db)
		worksheets = postgres.NewWorksheetRepository(db)
		log.Println("History persistence: postgres")
	} else {
		questions = memory.NewQuestionRepository(appConfig.History.Limit)
		worksheets = memory.NewWorksheetRepository(appConfig.History.Limit)
		log.Println("History persistence: in-memory")
	}

	// Initialize web server
	server := ui.NewServer(appConfig)
	if err := server.Initialize(ui.Deps{
		Bank:        selectBankPort(appConfig),
		RNG:         rng.NewRNGAdapter(),
		Questions:   questions,
		Worksheets:  worksheets,
		Concurrency: appConfig.Generator.BuildConcurrency,
		CodeSalt:    appConfig.Generator.ShareCodeSalt,
	}); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start the server
	log.Printf("Starting question generator on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
