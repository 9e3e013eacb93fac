package app

import (
	"context"

	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/internal"
	"questgen/internal/assembly"
	"questgen/internal/errors"
	"questgen/ports"
)

// codeAttempts bounds share code retries when a save is rejected
const codeAttempts = 3

// AssessmentService builds assessments from section specs, assigns share
// codes and persists the result so codes resolve later.
type AssessmentService struct {
	builder *assembly.Builder
	codec   *assembly.Codec
	store   ports.WorksheetRepository
	logger  *internal.Logger
}

// NewAssessmentService creates an assessment service
func NewAssessmentService(builder *assembly.Builder, codec *assembly.Codec, store ports.WorksheetRepository) *AssessmentService {
	return &AssessmentService{
		builder: builder,
		codec:   codec,
		store:   store,
		logger:  internal.DefaultLogger.WithTag("Assessment"),
	}
}

// BuildAssessment validates the spec, generates every section, assigns a
// share code and persists the document. The save is retried with a fresh
// code a few times so a code collision cannot lose a built assessment.
func (s *AssessmentService) BuildAssessment(ctx context.Context, spec assessment.Spec) (*assessment.Assessment, error) {
	a, err := s.builder.Build(ctx, spec)
	if err != nil {
		return nil, err
	}

	var saveErr error
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := s.codec.NewCode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to assign share code")
		}
		a.Code = code

		if saveErr = s.store.SaveWorksheet(ctx, a); saveErr == nil {
			s.logger.Info("stored %s %s under code %s", a.Kind, a.ID, a.Code)
			return a, nil
		}
		s.logger.Warn("saving %s under code %s failed: %v", a.Kind, a.Code, saveErr)
	}

	return nil, errors.Wrap(saveErr, "failed to save assessment")
}

// Worksheet retrieves a stored assessment by ID
func (s *AssessmentService) Worksheet(ctx context.Context, id core.WorksheetID) (*assessment.Assessment, error) {
	return s.store.GetWorksheet(ctx, id)
}

// WorksheetByCode resolves a share code to its stored assessment
func (s *AssessmentService) WorksheetByCode(ctx context.Context, code string) (*assessment.Assessment, error) {
	return s.store.GetWorksheetByCode(ctx, code)
}

// RecentWorksheets lists the newest stored assessments
func (s *AssessmentService) RecentWorksheets(ctx context.Context, limit int) ([]*assessment.Assessment, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.RecentWorksheets(ctx, limit)
}
