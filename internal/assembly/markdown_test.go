package assembly

import (
	"strings"
	"testing"

	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/domain/question"
)

func fixtureQuestion(text, answer string, d question.Difficulty, steps ...string) *question.Question {
	return &question.Question{
		ID:         core.QuestionID(core.NewID()),
		Variation:  question.VariationCalculate,
		ContextID:  "server-tips",
		Level:      question.LevelStandard,
		Difficulty: d,
		Text:       text,
		Answer:     answer,
		Steps:      steps,
		Marks:      2,
		CreatedAt:  core.Now(),
	}
}

func fixtureAssessment(kind assessment.Kind, key assessment.AnswerKeyMode) *assessment.Assessment {
	return &assessment.Assessment{
		ID:           core.WorksheetID(core.NewID()),
		Code:         "k4bn7",
		Kind:         kind,
		Title:        "Unit Review",
		Instructions: instructionsFor(kind),
		AnswerKey:    key,
		Sections: []assessment.Section{
			{
				Title: "Mean Basics",
				Questions: []*question.Question{
					fixtureQuestion("Tips over 5 days: $45, $52, $48, $50, $55. Calculate the mean.", "$50.00", 4,
						"Add all tips: $45 + $52 + $48 + $50 + $55 = $250",
						"Count the number of tips: 5",
						"Divide sum by count: $250 ÷ 5 = $50.00"),
				},
			},
			{
				Title: "Missing Values",
				Questions: []*question.Question{
					fixtureQuestion("Scores: 80, ?, 90. The mean was 85. Find the missing score.", "85", 1),
				},
			},
		},
		Seed:      42,
		CreatedAt: core.Now(),
	}
}

// TestRenderMarkdown_Worksheet verifies the worksheet layout: title, info
// block, instructions, skill sections and continuous numbering.
func TestRenderMarkdown_Worksheet(t *testing.T) {
	md := RenderMarkdown(fixtureAssessment(assessment.KindWorksheet, assessment.KeyNone))

	for _, want := range []string{
		"# Unit Review",
		"Name: ____",
		"Total Questions: 2",
		"**Instructions:** Complete all questions. Show your work.",
		"## Skill: Mean Basics",
		"## Skill: Missing Values",
		"**Question 1**",
		"**Question 2**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("worksheet markdown missing %q", want)
		}
	}
	if strings.Contains(md, "Answer Key") {
		t.Error("worksheet rendered an answer key without one requested")
	}
	if strings.Contains(md, "Score:") {
		t.Error("worksheet rendered a score line")
	}
}

// TestRenderMarkdown_QuizTagsDifficulty verifies quiz headings carry the
// difficulty word and the info block carries a score line.
func TestRenderMarkdown_QuizTagsDifficulty(t *testing.T) {
	md := RenderMarkdown(fixtureAssessment(assessment.KindQuiz, assessment.KeyNone))

	if !strings.Contains(md, "**Question 1 (Hard)**") {
		t.Error("quiz heading lost its difficulty tag")
	}
	if !strings.Contains(md, "Score: ______ / ______") {
		t.Error("quiz info block lost its score line")
	}
	if !strings.Contains(md, "Questions increase in difficulty.") {
		t.Error("quiz instructions missing")
	}
}

// TestRenderMarkdown_TestSortsEasierFirst verifies the test layout flattens
// sections into one difficulty-ascending run tagged with skill names.
func TestRenderMarkdown_TestSortsEasierFirst(t *testing.T) {
	md := RenderMarkdown(fixtureAssessment(assessment.KindTest, assessment.KeyNone))

	if !strings.Contains(md, "**Question 1 - Missing Values (Easy)**") {
		t.Error("easier question did not move to the front")
	}
	if !strings.Contains(md, "**Question 2 - Mean Basics (Hard)**") {
		t.Error("harder question did not move to the back")
	}
	if !strings.Contains(md, "Class: ____") {
		t.Error("test info block lost its class line")
	}
	if strings.Contains(md, "## Skill:") {
		t.Error("test layout kept section headers")
	}
}

// TestRenderMarkdown_AnswerKeyModes verifies what each key mode reveals.
func TestRenderMarkdown_AnswerKeyModes(t *testing.T) {
	md := RenderMarkdown(fixtureAssessment(assessment.KindWorksheet, assessment.KeyAnswersOnly))
	if !strings.Contains(md, "# Answer Key") {
		t.Fatal("answer key section missing")
	}
	if !strings.Contains(md, "Answer: $50.00") {
		t.Error("answers_only key lost the answer")
	}
	if strings.Contains(md, "Steps:") {
		t.Error("answers_only key leaked solution steps")
	}

	md = RenderMarkdown(fixtureAssessment(assessment.KindWorksheet, assessment.KeyWithSteps))
	if !strings.Contains(md, "Steps:") {
		t.Error("with_steps key lost the steps")
	}
	if !strings.Contains(md, "- Divide sum by count: $250 ÷ 5 = $50.00") {
		t.Error("with_steps key lost a step line")
	}
	if !strings.Contains(md, "---\n\n# Answer Key") {
		t.Error("answer key does not start on its own page")
	}
}

// TestRenderMarkdown_PracticeShowsSkillUnderTitle verifies the practice
// layout names its single skill under the document title.
func TestRenderMarkdown_PracticeShowsSkillUnderTitle(t *testing.T) {
	a := fixtureAssessment(assessment.KindPractice, assessment.KeyNone)
	a.Sections = a.Sections[:1]
	md := RenderMarkdown(a)

	if !strings.Contains(md, "## Skill: Mean Basics") {
		t.Error("practice page lost its skill heading")
	}
	if !strings.Contains(md, "Questions: 1") {
		t.Error("practice info block lost its question count")
	}
	if strings.Contains(md, "Total Questions:") {
		t.Error("practice info block used the worksheet wording")
	}
}

// TestRenderHTML_WrapsPrintablePage verifies the standalone page shell and
// the page break ahead of the answer key.
func TestRenderHTML_WrapsPrintablePage(t *testing.T) {
	a := fixtureAssessment(assessment.KindWorksheet, assessment.KeyWithSteps)
	a.Title = "Mean & Median Review"
	out := string(RenderHTML(a))

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output is not a standalone page")
	}
	if !strings.Contains(out, "<title>Mean &amp; Median Review</title>") {
		t.Error("title was not escaped into the page head")
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<li>") {
		t.Error("markdown structure did not reach the HTML")
	}
	if !strings.Contains(out, "<hr") {
		t.Error("answer key page break missing")
	}
}
