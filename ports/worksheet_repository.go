package ports

import (
	"context"

	"questgen/domain/assessment"
	"questgen/domain/core"
)

// WorksheetRepository stores built assessments so share codes resolve later
type WorksheetRepository interface {
	// SaveWorksheet records a built assessment under its share code
	SaveWorksheet(ctx context.Context, a *assessment.Assessment) error

	// GetWorksheet retrieves an assessment by ID
	GetWorksheet(ctx context.Context, id core.WorksheetID) (*assessment.Assessment, error)

	// GetWorksheetByCode resolves a share code
	GetWorksheetByCode(ctx context.Context, code string) (*assessment.Assessment, error)

	// RecentWorksheets returns the newest assessments first, up to limit
	RecentWorksheets(ctx context.Context, limit int) ([]*assessment.Assessment, error)
}
