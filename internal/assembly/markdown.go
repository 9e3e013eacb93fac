package assembly

import (
	"fmt"
	"sort"
	"strings"

	"questgen/domain/assessment"
	"questgen/domain/question"
)

const nameBlank = "Name: _______________________________"
const classBlank = "Class: _______________________________"
const scoreBlank = "Score: ______ / ______"

// numbered carries a question with the title of its owning section, so the
// flat test layout can keep its skill tags after sorting.
type numbered struct {
	q       *question.Question
	section string
}

// RenderMarkdown renders the printable document: title, student info block,
// instructions, numbered questions and the optional answer key. The layout
// follows the classroom paper formats: worksheets group by skill, quizzes
// tag difficulty, tests flatten to one difficulty-ascending run.
func RenderMarkdown(a *assessment.Assessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", a.Title)
	if a.Kind == assessment.KindPractice && len(a.Sections) == 1 {
		fmt.Fprintf(&sb, "## Skill: %s\n\n", a.Sections[0].Title)
	}

	writeInfoBlock(&sb, a)

	if a.Instructions != "" {
		fmt.Fprintf(&sb, "**Instructions:** %s\n\n", a.Instructions)
	}

	if a.Kind == assessment.KindTest {
		for i, n := range documentOrder(a) {
			writeQuestionHeading(&sb, a.Kind, i+1, n)
			fmt.Fprintf(&sb, "%s\n\n", n.q.Text)
		}
	} else {
		num := 1
		for i := range a.Sections {
			s := &a.Sections[i]
			if a.Kind != assessment.KindPractice {
				fmt.Fprintf(&sb, "## Skill: %s\n\n", s.Title)
			}
			for _, q := range s.Questions {
				writeQuestionHeading(&sb, a.Kind, num, numbered{q: q, section: s.Title})
				fmt.Fprintf(&sb, "%s\n\n", q.Text)
				num++
			}
		}
	}

	if a.HasKey() {
		writeAnswerKey(&sb, a)
	}

	return sb.String()
}

// writeInfoBlock renders the student info lines under the title. Trailing
// double spaces are markdown hard breaks.
func writeInfoBlock(sb *strings.Builder, a *assessment.Assessment) {
	date := a.CreatedAt.Time().Format("January 2, 2006")
	fmt.Fprintf(sb, "%s   Date: %s  \n", nameBlank, date)
	switch a.Kind {
	case assessment.KindPractice:
		fmt.Fprintf(sb, "Questions: %d\n\n", a.QuestionCount())
	case assessment.KindWorksheet:
		fmt.Fprintf(sb, "Total Questions: %d\n\n", a.QuestionCount())
	case assessment.KindQuiz:
		fmt.Fprintf(sb, "Total Questions: %d  \n%s\n\n", a.QuestionCount(), scoreBlank)
	case assessment.KindTest:
		fmt.Fprintf(sb, "%s   Total Questions: %d  \n%s\n\n", classBlank, a.QuestionCount(), scoreBlank)
	}
}

func writeQuestionHeading(sb *strings.Builder, kind assessment.Kind, num int, n numbered) {
	switch kind {
	case assessment.KindQuiz:
		fmt.Fprintf(sb, "**Question %d (%s)**\n\n", num, n.q.Difficulty.Label())
	case assessment.KindTest:
		fmt.Fprintf(sb, "**Question %d - %s (%s)**\n\n", num, n.section, n.q.Difficulty.Label())
	default:
		fmt.Fprintf(sb, "**Question %d**\n\n", num)
	}
}

// writeAnswerKey renders the key on its own page, mirroring the question
// order and headings of the paper side.
func writeAnswerKey(sb *strings.Builder, a *assessment.Assessment) {
	sb.WriteString("---\n\n# Answer Key\n\n")

	if a.Kind == assessment.KindTest {
		for i, n := range documentOrder(a) {
			writeQuestionHeading(sb, a.Kind, i+1, n)
			writeAnswer(sb, a.AnswerKey, n.q)
		}
		return
	}

	num := 1
	for i := range a.Sections {
		s := &a.Sections[i]
		if a.Kind != assessment.KindPractice {
			fmt.Fprintf(sb, "## Skill: %s\n\n", s.Title)
		}
		for _, q := range s.Questions {
			writeQuestionHeading(sb, a.Kind, num, numbered{q: q, section: s.Title})
			writeAnswer(sb, a.AnswerKey, q)
			num++
		}
	}
}

func writeAnswer(sb *strings.Builder, mode assessment.AnswerKeyMode, q *question.Question) {
	fmt.Fprintf(sb, "Answer: %s\n\n", q.Answer)
	if mode != assessment.KeyWithSteps || len(q.Steps) == 0 {
		return
	}
	sb.WriteString("Steps:\n\n")
	for _, step := range q.Steps {
		fmt.Fprintf(sb, "- %s\n", step)
	}
	sb.WriteString("\n")
}

// documentOrder flattens the sections for the test layout, stably sorted so
// questions progress from easier to harder while ties keep build order.
func documentOrder(a *assessment.Assessment) []numbered {
	out := make([]numbered, 0, a.QuestionCount())
	for i := range a.Sections {
		for _, q := range a.Sections[i].Questions {
			out = append(out, numbered{q: q, section: a.Sections[i].Title})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].q.Difficulty < out[j].q.Difficulty
	})
	return out
}
