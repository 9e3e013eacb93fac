package ports

import (
	"context"

	"questgen/domain/core"
	"questgen/domain/question"
)

// QuestionRepository records generated questions for the history view
type QuestionRepository interface {
	// SaveQuestion records one generated question
	SaveQuestion(ctx context.Context, q *question.Question) error

	// GetQuestion retrieves a question by ID
	GetQuestion(ctx context.Context, id core.QuestionID) (*question.Question, error)

	// RecentQuestions returns the newest questions first, up to limit
	RecentQuestions(ctx context.Context, limit int) ([]*question.Question, error)

	// CountQuestions returns the total recorded
	CountQuestions(ctx context.Context) (int, error)
}
