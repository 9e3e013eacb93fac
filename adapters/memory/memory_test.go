package memory

import (
	"context"
	"fmt"
	"testing"

	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/domain/question"
)

func sampleQuestion(n int) *question.Question {
	return &question.Question{
		ID:        core.QuestionID(fmt.Sprintf("q-%03d", n)),
		Variation: question.VariationCalculate,
		ContextID: "server-tips",
		Level:     question.LevelStandard,
		Text:      fmt.Sprintf("question %d", n),
		CreatedAt: core.Now(),
	}
}

func sampleWorksheet(n int, code string) *assessment.Assessment {
	return &assessment.Assessment{
		ID:    core.WorksheetID(fmt.Sprintf("ws-%03d", n)),
		Code:  code,
		Kind:  assessment.KindWorksheet,
		Title: fmt.Sprintf("worksheet %d", n),
	}
}

func TestQuestionRepository_SaveAndGet(t *testing.T) {
	repo := NewQuestionRepository(10)
	ctx := context.Background()

	q := sampleQuestion(1)
	if err := repo.SaveQuestion(ctx, q); err != nil {
		t.Fatalf("SaveQuestion: %v", err)
	}

	got, err := repo.GetQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if got.Text != q.Text {
		t.Errorf("Text = %q, want %q", got.Text, q.Text)
	}

	// The stored copy must not alias the caller's struct
	q.Text = "mutated"
	got, _ = repo.GetQuestion(ctx, q.ID)
	if got.Text == "mutated" {
		t.Error("stored question aliases the caller's struct")
	}
}

func TestQuestionRepository_RecentNewestFirst(t *testing.T) {
	repo := NewQuestionRepository(10)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if err := repo.SaveQuestion(ctx, sampleQuestion(i)); err != nil {
			t.Fatalf("SaveQuestion %d: %v", i, err)
		}
	}

	recent, err := repo.RecentQuestions(ctx, 3)
	if err != nil {
		t.Fatalf("RecentQuestions: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d questions, want 3", len(recent))
	}
	for i, want := range []string{"question 5", "question 4", "question 3"} {
		if recent[i].Text != want {
			t.Errorf("recent[%d].Text = %q, want %q", i, recent[i].Text, want)
		}
	}
}

func TestQuestionRepository_EvictsOldest(t *testing.T) {
	repo := NewQuestionRepository(3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if err := repo.SaveQuestion(ctx, sampleQuestion(i)); err != nil {
			t.Fatalf("SaveQuestion %d: %v", i, err)
		}
	}

	count, err := repo.CountQuestions(ctx)
	if err != nil {
		t.Fatalf("CountQuestions: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	if _, err := repo.GetQuestion(ctx, "q-001"); !core.IsNotFoundError(err) {
		t.Errorf("evicted question lookup error = %v, want not found", err)
	}
	if _, err := repo.GetQuestion(ctx, "q-005"); err != nil {
		t.Errorf("newest question should survive, got %v", err)
	}
}

func TestQuestionRepository_ResaveDoesNotEvict(t *testing.T) {
	repo := NewQuestionRepository(2)
	ctx := context.Background()

	repo.SaveQuestion(ctx, sampleQuestion(1))
	repo.SaveQuestion(ctx, sampleQuestion(2))
	repo.SaveQuestion(ctx, sampleQuestion(2))

	count, _ := repo.CountQuestions(ctx)
	if count != 2 {
		t.Errorf("count after resave = %d, want 2", count)
	}
	if _, err := repo.GetQuestion(ctx, "q-001"); err != nil {
		t.Errorf("resave of existing ID evicted another entry: %v", err)
	}
}

func TestQuestionRepository_GetUnknownIsNotFound(t *testing.T) {
	repo := NewQuestionRepository(10)

	_, err := repo.GetQuestion(context.Background(), "missing")
	if !core.IsNotFoundError(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestWorksheetRepository_CodeResolves(t *testing.T) {
	repo := NewWorksheetRepository(10)
	ctx := context.Background()

	a := sampleWorksheet(1, "k4bn7")
	if err := repo.SaveWorksheet(ctx, a); err != nil {
		t.Fatalf("SaveWorksheet: %v", err)
	}

	got, err := repo.GetWorksheetByCode(ctx, "k4bn7")
	if err != nil {
		t.Fatalf("GetWorksheetByCode: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("ID = %s, want %s", got.ID, a.ID)
	}

	if _, err := repo.GetWorksheetByCode(ctx, "zzzzz"); !core.IsNotFoundError(err) {
		t.Errorf("unknown code error = %v, want not found", err)
	}
}

func TestWorksheetRepository_EvictionDropsCode(t *testing.T) {
	repo := NewWorksheetRepository(2)
	ctx := context.Background()

	repo.SaveWorksheet(ctx, sampleWorksheet(1, "aaaaa"))
	repo.SaveWorksheet(ctx, sampleWorksheet(2, "bbbbb"))
	repo.SaveWorksheet(ctx, sampleWorksheet(3, "ccccc"))

	if _, err := repo.GetWorksheetByCode(ctx, "aaaaa"); !core.IsNotFoundError(err) {
		t.Errorf("evicted code error = %v, want not found", err)
	}
	if _, err := repo.GetWorksheetByCode(ctx, "ccccc"); err != nil {
		t.Errorf("newest code should resolve, got %v", err)
	}
}

func TestWorksheetRepository_RecentNewestFirst(t *testing.T) {
	repo := NewWorksheetRepository(10)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		repo.SaveWorksheet(ctx, sampleWorksheet(i, fmt.Sprintf("code%d", i)))
	}

	recent, err := repo.RecentWorksheets(ctx, 2)
	if err != nil {
		t.Fatalf("RecentWorksheets: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d worksheets, want 2", len(recent))
	}
	if recent[0].Title != "worksheet 4" || recent[1].Title != "worksheet 3" {
		t.Errorf("order = [%s, %s], want newest first", recent[0].Title, recent[1].Title)
	}
}
