package ports

import (
	"context"

	"questgen/domain/bank"
)

// BankPort loads a context bank from some source: the workbook files under
// the data directory, or the built-in bank when no files are configured.
type BankPort interface {
	// Load reads, validates and indexes the bank. Called once at startup
	// and again on explicit reload.
	Load(ctx context.Context) (*bank.Bank, error)

	// Describe names the source for logs and the status endpoint
	Describe() string
}
