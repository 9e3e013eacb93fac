package app

import (
	"context"
	"strings"
	"testing"

	"questgen/adapters/memory"
	"questgen/adapters/rng"
	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/assembly"
	"questgen/internal/bankkit"
	"questgen/internal/engine"
	"questgen/internal/engine/generators"
)

func newTestAssessmentService(t *testing.T) *AssessmentService {
	t.Helper()
	b, err := bankkit.BuiltinBank()
	if err != nil {
		t.Fatalf("BuiltinBank: %v", err)
	}
	producer := engine.NewProducer(engine.New(b), generators.All(), rng.NewRNGAdapterSeeded(13))
	builder := assembly.NewBuilder(producer, 4)
	codec, err := assembly.NewCodec("test-salt")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return NewAssessmentService(builder, codec, memory.NewWorksheetRepository(20))
}

func worksheetSpec() assessment.Spec {
	return assessment.Spec{
		Kind:  assessment.KindWorksheet,
		Title: "Unit 3 Review",
		Sections: []assessment.SectionSpec{
			{Variation: question.VariationCalculate, Count: 3, Difficulty: 2, Level: question.LevelStandard},
			{Variation: question.VariationCompare, Count: 2, Difficulty: 3, Level: question.LevelStandard},
		},
		Seed: 21,
	}
}

func TestAssessmentService_BuildAssignsCodeAndPersists(t *testing.T) {
	svc := newTestAssessmentService(t)
	ctx := context.Background()

	built, err := svc.BuildAssessment(ctx, worksheetSpec())
	if err != nil {
		t.Fatalf("BuildAssessment: %v", err)
	}

	if len(built.Code) < 5 {
		t.Errorf("Code = %q, want at least 5 characters", built.Code)
	}
	if built.QuestionCount() != 5 {
		t.Errorf("QuestionCount = %d, want 5", built.QuestionCount())
	}

	got, err := svc.WorksheetByCode(ctx, built.Code)
	if err != nil {
		t.Fatalf("WorksheetByCode: %v", err)
	}
	if got.ID != built.ID {
		t.Errorf("resolved ID = %s, want %s", got.ID, built.ID)
	}
	if got.Title != "Unit 3 Review" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestAssessmentService_InvalidSpecFailsBeforeWork(t *testing.T) {
	svc := newTestAssessmentService(t)

	_, err := svc.BuildAssessment(context.Background(), assessment.Spec{Kind: assessment.KindQuiz})
	if err == nil {
		t.Fatal("expected error for a spec with no sections")
	}
	if !strings.Contains(err.Error(), "section") {
		t.Errorf("error = %v, want a section complaint", err)
	}
}

func TestAssessmentService_UnknownCodeIsNotFound(t *testing.T) {
	svc := newTestAssessmentService(t)

	_, err := svc.WorksheetByCode(context.Background(), "nope1")
	if !core.IsNotFoundError(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestAssessmentService_RecentListsNewestFirst(t *testing.T) {
	svc := newTestAssessmentService(t)
	ctx := context.Background()

	first, err := svc.BuildAssessment(ctx, worksheetSpec())
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	spec := worksheetSpec()
	spec.Title = "Unit 4 Review"
	second, err := svc.BuildAssessment(ctx, spec)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	recent, err := svc.RecentWorksheets(ctx, 10)
	if err != nil {
		t.Fatalf("RecentWorksheets: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d worksheets, want 2", len(recent))
	}
	if recent[0].ID != second.ID || recent[1].ID != first.ID {
		t.Error("recent worksheets are not newest first")
	}
	if recent[0].Code == recent[1].Code {
		t.Error("share codes collided")
	}
}
