package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/ports"

	"github.com/jmoiron/sqlx"
)

// WorksheetRepositoryImpl implements WorksheetRepository for PostgreSQL
type WorksheetRepositoryImpl struct {
	db *sqlx.DB
}

// NewWorksheetRepository creates a new PostgreSQL worksheet repository
func NewWorksheetRepository(db *sqlx.DB) ports.WorksheetRepository {
	return &WorksheetRepositoryImpl{db: db}
}

// SaveWorksheet records a built assessment under its share code
func (r *WorksheetRepositoryImpl) SaveWorksheet(ctx context.Context, a *assessment.Assessment) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal worksheet: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO worksheets (id, code, kind, title, question_count, seed, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID.String(), a.Code, a.Kind, a.Title, a.QuestionCount(), a.Seed, payload, a.CreatedAt.Time())

	if err != nil {
		return fmt.Errorf("failed to save worksheet: %w", err)
	}

	return nil
}

// GetWorksheet retrieves an assessment by ID
func (r *WorksheetRepositoryImpl) GetWorksheet(ctx context.Context, id core.WorksheetID) (*assessment.Assessment, error) {
	return r.getOne(ctx, `SELECT payload FROM worksheets WHERE id = $1`, id.String(), id.String())
}

// GetWorksheetByCode resolves a share code
func (r *WorksheetRepositoryImpl) GetWorksheetByCode(ctx context.Context, code string) (*assessment.Assessment, error) {
	return r.getOne(ctx, `SELECT payload FROM worksheets WHERE code = $1`, code, code)
}

func (r *WorksheetRepositoryImpl) getOne(ctx context.Context, query, arg, handle string) (*assessment.Assessment, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&payload)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("worksheet", handle)
		}
		return nil, fmt.Errorf("failed to get worksheet: %w", err)
	}

	var a assessment.Assessment
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal worksheet: %w", err)
	}

	return &a, nil
}

// RecentWorksheets returns the newest assessments first, up to limit
func (r *WorksheetRepositoryImpl) RecentWorksheets(ctx context.Context, limit int) ([]*assessment.Assessment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT payload FROM worksheets
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}
	defer rows.Close()

	var sheets []*assessment.Assessment
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var a assessment.Assessment
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal worksheet: %w", err)
		}
		sheets = append(sheets, &a)
	}

	return sheets, rows.Err()
}
