package migration

import (
	"context"
	"fmt"

	"questgen/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createQuestionsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create questions table")
	}

	if err := r.createWorksheetsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create worksheets table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createQuestionsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id VARCHAR(64) PRIMARY KEY,
			variation VARCHAR(50) NOT NULL,
			context_id VARCHAR(100) NOT NULL,
			category VARCHAR(100),
			level VARCHAR(20) NOT NULL,
			difficulty SMALLINT NOT NULL,
			seed BIGINT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createWorksheetsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS worksheets (
			id VARCHAR(64) PRIMARY KEY,
			code VARCHAR(32) UNIQUE NOT NULL,
			kind VARCHAR(20) NOT NULL,
			title VARCHAR(255),
			question_count INTEGER NOT NULL DEFAULT 0,
			seed BIGINT,
			payload JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		// Question history indexes
		"CREATE INDEX IF NOT EXISTS idx_questions_created_at ON questions(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_questions_variation ON questions(variation)",
		"CREATE INDEX IF NOT EXISTS idx_questions_context_id ON questions(context_id)",

		// Worksheet indexes
		"CREATE INDEX IF NOT EXISTS idx_worksheets_created_at ON worksheets(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_worksheets_kind ON worksheets(kind)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}
