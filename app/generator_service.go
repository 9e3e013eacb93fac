package app

import (
	"context"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal"
	"questgen/internal/engine"
	"questgen/ports"
)

// DefaultHistoryLimit bounds history listings when no limit is given
const DefaultHistoryLimit = 20

// GeneratorService orchestrates single question generation: it validates the
// request, fills defaults, runs the producer and records the result in the
// history store.
type GeneratorService struct {
	producer *engine.Producer
	history  ports.QuestionRepository
	logger   *internal.Logger
}

// NewGeneratorService creates a generator service
func NewGeneratorService(producer *engine.Producer, history ports.QuestionRepository) *GeneratorService {
	return &GeneratorService{
		producer: producer,
		history:  history,
		logger:   internal.DefaultLogger.WithTag("Generator"),
	}
}

// Generate builds one question. A zero seed draws a fresh one, an empty
// level defaults to standard and a zero difficulty to the default. The
// question is recorded in the history store; a record failure is logged,
// not returned, so a broken history backend cannot block generation.
func (s *GeneratorService) Generate(ctx context.Context, params engine.Params) (*question.Question, error) {
	if !params.Variation.Valid() {
		return nil, core.NewVariationError(string(params.Variation))
	}
	if params.Level == "" {
		params.Level = question.LevelStandard
	} else if !params.Level.Valid() {
		return nil, core.ErrLevelUnknown
	}
	if params.Difficulty == 0 {
		params.Difficulty = question.DefaultDifficulty
	} else if !params.Difficulty.Valid() {
		return nil, core.ErrDifficultyRange
	}
	if params.Seed == 0 {
		params.Seed = s.producer.NextSeed()
	}

	q, err := s.producer.Produce(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := s.history.SaveQuestion(ctx, q); err != nil {
		s.logger.Warn("failed to record question %s: %v", q.ID, err)
	}

	s.logger.Debug("generated %s question in context %s (seed %d)", q.Variation, q.ContextID, q.Seed)
	return q, nil
}

// Regenerate builds a fresh question with the same shape: same variation,
// context, level and difficulty, new data.
func (s *GeneratorService) Regenerate(ctx context.Context, params engine.Params) (*question.Question, error) {
	params.Seed = 0
	return s.Generate(ctx, params)
}

// RandomContext builds a fresh question with the same variation, level and
// difficulty but a newly drawn context.
func (s *GeneratorService) RandomContext(ctx context.Context, params engine.Params) (*question.Question, error) {
	params.ContextID = ""
	params.Seed = 0
	return s.Generate(ctx, params)
}

// Question retrieves one recorded question by ID
func (s *GeneratorService) Question(ctx context.Context, id core.QuestionID) (*question.Question, error) {
	return s.history.GetQuestion(ctx, id)
}

// RecentQuestions lists the newest recorded questions
func (s *GeneratorService) RecentQuestions(ctx context.Context, limit int) ([]*question.Question, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.history.RecentQuestions(ctx, limit)
}

// CountQuestions returns the total recorded
func (s *GeneratorService) CountQuestions(ctx context.Context) (int, error) {
	return s.history.CountQuestions(ctx)
}
