package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/ports"

	"github.com/jmoiron/sqlx"
)

// QuestionRepositoryImpl implements QuestionRepository for PostgreSQL
type QuestionRepositoryImpl struct {
	db *sqlx.DB
}

// NewQuestionRepository creates a new PostgreSQL question repository
func NewQuestionRepository(db *sqlx.DB) ports.QuestionRepository {
	return &QuestionRepositoryImpl{db: db}
}

// SaveQuestion records one generated question. The full question is stored as
// a JSONB payload; the scalar columns exist for filtering and ordering.
func (r *QuestionRepositoryImpl) SaveQuestion(ctx context.Context, q *question.Question) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO questions (id, variation, context_id, category, level, difficulty, seed, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, q.ID.String(), q.Variation, q.ContextID.String(), q.Category, q.Level, q.Difficulty, q.Seed, payload, q.CreatedAt.Time())

	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	return nil
}

// GetQuestion retrieves a question by ID
func (r *QuestionRepositoryImpl) GetQuestion(ctx context.Context, id core.QuestionID) (*question.Question, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT payload FROM questions WHERE id = $1
	`, id.String()).Scan(&payload)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("question", id.String())
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	var q question.Question
	if err := json.Unmarshal(payload, &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question: %w", err)
	}

	return &q, nil
}

// RecentQuestions returns the newest questions first, up to limit
func (r *QuestionRepositoryImpl) RecentQuestions(ctx context.Context, limit int) ([]*question.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT payload FROM questions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []*question.Question
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var q question.Question
		if err := json.Unmarshal(payload, &q); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question: %w", err)
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}

// CountQuestions returns the total recorded
func (r *QuestionRepositoryImpl) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions`)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}
