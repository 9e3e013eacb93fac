package assembly

import (
	"context"
	"errors"
	"testing"

	"questgen/adapters/rng"
	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/bankkit"
	"questgen/internal/engine"
	"questgen/internal/engine/generators"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := bankkit.BuiltinBank()
	if err != nil {
		t.Fatalf("builtin bank: %v", err)
	}
	producer := engine.NewProducer(engine.New(b), generators.All(), rng.NewRNGAdapterSeeded(7))
	return NewBuilder(producer, 4)
}

func questionTexts(a *assessment.Assessment) []string {
	out := make([]string, 0, a.QuestionCount())
	for _, q := range a.Questions() {
		out = append(out, q.Text)
	}
	return out
}

// TestBuilder_WorksheetOrderIsStable verifies a pinned seed reproduces the
// document question for question, regardless of build concurrency.
func TestBuilder_WorksheetOrderIsStable(t *testing.T) {
	b := newTestBuilder(t)
	spec := assessment.Spec{
		Kind:  assessment.KindWorksheet,
		Title: "Unit Review",
		Seed:  42,
		Sections: []assessment.SectionSpec{
			{Variation: question.VariationCalculate, Count: 3, Difficulty: 2, Level: question.LevelStandard},
			{Variation: question.VariationMissingValue, Count: 2, Difficulty: 3, Level: question.LevelStandard},
		},
	}

	first, err := b.Build(context.Background(), spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := b.Build(context.Background(), spec)
	if err != nil {
		t.Fatalf("Build again: %v", err)
	}

	if first.QuestionCount() != 5 {
		t.Fatalf("question count = %d, want 5", first.QuestionCount())
	}
	if len(first.Sections) != 2 || len(first.Sections[0].Questions) != 3 {
		t.Fatalf("section shape = %d/%d", len(first.Sections), len(first.Sections[0].Questions))
	}

	a, b2 := questionTexts(first), questionTexts(second)
	for i := range a {
		if a[i] != b2[i] {
			t.Errorf("question %d differs between identical builds:\n%s\n%s", i+1, a[i], b2[i])
		}
	}

	for _, q := range first.Sections[0].Questions {
		if q.Difficulty != 2 {
			t.Errorf("worksheet question drifted to difficulty %d", q.Difficulty)
		}
	}
}

// TestBuilder_QuizRampsDifficulty verifies quiz questions ascend through the
// band around the requested difficulty.
func TestBuilder_QuizRampsDifficulty(t *testing.T) {
	b := newTestBuilder(t)
	spec := assessment.Spec{
		Kind: assessment.KindQuiz,
		Seed: 11,
		Sections: []assessment.SectionSpec{
			{Variation: question.VariationCalculate, Count: 6, Difficulty: 3, Level: question.LevelMinimal},
		},
	}

	a, err := b.Build(context.Background(), spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	qs := a.Sections[0].Questions
	for i := 1; i < len(qs); i++ {
		if qs[i].Difficulty < qs[i-1].Difficulty {
			t.Fatalf("difficulty dropped from %d to %d at question %d",
				qs[i-1].Difficulty, qs[i].Difficulty, i+1)
		}
	}
	if qs[0].Difficulty != 2 || qs[len(qs)-1].Difficulty != 4 {
		t.Errorf("ramp = %d..%d, want 2..4", qs[0].Difficulty, qs[len(qs)-1].Difficulty)
	}
}

// TestBuilder_SkillSectionRotatesVariations verifies a skill-driven section
// cycles through the skill's variations and takes the skill's name.
func TestBuilder_SkillSectionRotatesVariations(t *testing.T) {
	b := newTestBuilder(t)
	spec := assessment.Spec{
		Kind: assessment.KindWorksheet,
		Seed: 5,
		Sections: []assessment.SectionSpec{
			{SkillID: "mean-totals", Count: 4, Difficulty: 2, Level: question.LevelStandard},
		},
	}

	a, err := b.Build(context.Background(), spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if a.Sections[0].Title != "Means and Totals" {
		t.Errorf("section title = %q, want the skill name", a.Sections[0].Title)
	}
	qs := a.Sections[0].Questions
	want := []question.Variation{
		question.VariationFindTotal, question.VariationMissingCount,
		question.VariationFindTotal, question.VariationMissingCount,
	}
	for i, q := range qs {
		if q.Variation != want[i] {
			t.Errorf("question %d variation = %s, want %s", i+1, q.Variation, want[i])
		}
	}
}

// TestBuilder_UnknownSkill verifies an unknown skill id fails the build
// before any generation work.
func TestBuilder_UnknownSkill(t *testing.T) {
	b := newTestBuilder(t)
	spec := assessment.Spec{
		Kind: assessment.KindWorksheet,
		Sections: []assessment.SectionSpec{
			{SkillID: "long-division", Count: 2, Difficulty: 2, Level: question.LevelStandard},
		},
	}

	_, err := b.Build(context.Background(), spec)
	if !core.IsNotFoundError(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

// TestBuilder_PinnedContextHoldsAcrossQuestions verifies an explicit context
// id applies to every question in the section.
func TestBuilder_PinnedContextHoldsAcrossQuestions(t *testing.T) {
	b := newTestBuilder(t)
	spec := assessment.Spec{
		Kind: assessment.KindPractice,
		Seed: 3,
		Sections: []assessment.SectionSpec{
			{Variation: question.VariationCalculate, ContextID: "server-tips", Count: 4, Difficulty: 2, Level: question.LevelStandard},
		},
	}

	a, err := b.Build(context.Background(), spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, q := range a.Questions() {
		if q.ContextID != "server-tips" {
			t.Errorf("question %d context = %s, want server-tips", i+1, q.ContextID)
		}
	}
}

// TestBuilder_IncompatibleContextFails verifies a context that cannot host
// the variation aborts the build.
func TestBuilder_IncompatibleContextFails(t *testing.T) {
	b := newTestBuilder(t)
	spec := assessment.Spec{
		Kind: assessment.KindWorksheet,
		Sections: []assessment.SectionSpec{
			{Variation: question.VariationFindTotal, ContextID: "winter-lows", Count: 1, Difficulty: 2, Level: question.LevelMinimal},
		},
	}

	_, err := b.Build(context.Background(), spec)
	if !errors.Is(err, core.ErrIncompatibleContext) {
		t.Errorf("error = %v, want incompatible context", err)
	}
}

// TestBuilder_ZeroSeedDrawsFresh verifies unseeded builds get a recorded
// nonzero seed so they can be rebuilt later.
func TestBuilder_ZeroSeedDrawsFresh(t *testing.T) {
	b := newTestBuilder(t)
	spec := assessment.Spec{
		Kind: assessment.KindPractice,
		Sections: []assessment.SectionSpec{
			{Variation: question.VariationCalculate, Count: 1, Difficulty: 1, Level: question.LevelMinimal},
		},
	}

	a, err := b.Build(context.Background(), spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if a.Seed == 0 {
		t.Error("built assessment did not record its seed")
	}
}

// TestSectionDifficulties verifies the per-kind difficulty plans.
func TestSectionDifficulties(t *testing.T) {
	tests := []struct {
		name  string
		kind  assessment.Kind
		d     question.Difficulty
		count int
		want  []question.Difficulty
	}{
		{"worksheet holds", assessment.KindWorksheet, 3, 4, []question.Difficulty{3, 3, 3, 3}},
		{"practice holds", assessment.KindPractice, 5, 2, []question.Difficulty{5, 5}},
		{"quiz ramps around middle", assessment.KindQuiz, 3, 5, []question.Difficulty{2, 2, 3, 3, 4}},
		{"quiz clamps at floor", assessment.KindQuiz, 1, 4, []question.Difficulty{1, 1, 1, 2}},
		{"test clamps at ceiling", assessment.KindTest, 5, 2, []question.Difficulty{4, 5}},
		{"single question holds", assessment.KindQuiz, 4, 1, []question.Difficulty{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sectionDifficulties(tt.kind, tt.d, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("plan = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
