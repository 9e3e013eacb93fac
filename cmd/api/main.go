package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"questgen/adapters/excel"
	"questgen/adapters/memory"
	"questgen/adapters/postgres"
	"questgen/adapters/rng"
	"questgen/internal/bankkit"
	"questgen/internal/config"
	"questgen/internal/migration"
	"questgen/ports"
	"questgen/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Headless JSON API server. Serves the same endpoints as the web UI minus
// the pages and fragments, for callers that render their own front end.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var questions ports.QuestionRepository
	var worksheets ports.WorksheetRepository
	if appConfig.HasDatabase() {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := migration.NewRunner().Run(context.Background(), db); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		questions = postgres.NewQuestionRepository(db)
		worksheets = postgres.NewWorksheetRepository(db)
	} else {
		questions = memory.NewQuestionRepository(appConfig.History.Limit)
		worksheets = memory.NewWorksheetRepository(appConfig.History.Limit)
	}

	api := ui.NewAPI(ui.Deps{
		Bank:        selectBankPort(appConfig),
		RNG:         rng.NewRNGAdapter(),
		Questions:   questions,
		Worksheets:  worksheets,
		Concurrency: appConfig.Generator.BuildConcurrency,
		CodeSalt:    appConfig.Generator.ShareCodeSalt,
	})

	srv := &http.Server{
		Addr:    ":" + appConfig.Server.Port,
		Handler: api.Router(),
	}

	go func() {
		log.Printf("Starting question API on port %s", appConfig.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

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
