package assessment

import (
	"fmt"
	"strings"

	"questgen/domain/core"
	"questgen/domain/question"
)

// Kind names the four assessment formats
type Kind string

const (
	KindPractice  Kind = "practice"  // single skill drill page
	KindWorksheet Kind = "worksheet" // several titled skill sections
	KindQuiz      Kind = "quiz"      // short, difficulty-progressing
	KindTest      Kind = "test"      // comprehensive, cross-skill
)

// ParseKind validates an assessment kind token
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindPractice, KindWorksheet, KindQuiz, KindTest:
		return k, nil
	}
	return "", fmt.Errorf("unknown assessment kind %q", s)
}

// DisplayName returns the printed document heading for the kind
func (k Kind) DisplayName() string {
	switch k {
	case KindPractice:
		return "Practice Page"
	case KindWorksheet:
		return "Worksheet"
	case KindQuiz:
		return "Quiz"
	case KindTest:
		return "Test"
	}
	return string(k)
}

// AnswerKeyMode controls what the answer key section reveals
type AnswerKeyMode string

const (
	KeyNone        AnswerKeyMode = "none"
	KeyAnswersOnly AnswerKeyMode = "answers_only"
	KeyWithSteps   AnswerKeyMode = "with_steps"
)

// ParseAnswerKeyMode validates an answer key token
func ParseAnswerKeyMode(s string) (AnswerKeyMode, error) {
	m := AnswerKeyMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case KeyNone, KeyAnswersOnly, KeyWithSteps:
		return m, nil
	}
	return "", fmt.Errorf("unknown answer key mode %q", s)
}

// SectionSpec is the request side of one assessment section. ContextID is
// optional; when empty each question draws a random compatible context.
type SectionSpec struct {
	Title      string              `json:"title"`
	SkillID    core.SkillID        `json:"skill_id,omitempty"`
	Variation  question.Variation  `json:"variation"`
	ContextID  core.ContextID      `json:"context_id,omitempty"`
	Count      int                 `json:"count"`
	Difficulty question.Difficulty `json:"difficulty"`
	Level      question.Level      `json:"level"`
}

// Validate checks a section spec before any generation work starts. A
// section names either a variation or a skill; skill sections rotate through
// the skill's variations at build time.
func (s *SectionSpec) Validate() error {
	if s.Count < 1 {
		return fmt.Errorf("section %q: count must be at least 1", s.Title)
	}
	if s.Variation == "" {
		if s.SkillID == "" {
			return fmt.Errorf("section %q: a variation or a skill is required", s.Title)
		}
	} else if !s.Variation.Valid() {
		return core.NewVariationError(string(s.Variation))
	}
	if !s.Difficulty.Valid() {
		return core.ErrDifficultyRange
	}
	if !s.Level.Valid() {
		return core.ErrLevelUnknown
	}
	return nil
}

// Spec is the request side of a full assessment build
type Spec struct {
	Kind      Kind          `json:"kind"`
	Title     string        `json:"title"`
	AnswerKey AnswerKeyMode `json:"answer_key,omitempty"`
	Sections  []SectionSpec `json:"sections"`
	Seed      int64         `json:"seed,omitempty"`
}

// Validate checks the whole build request before generation starts
func (s *Spec) Validate() error {
	if _, err := ParseKind(string(s.Kind)); err != nil {
		return err
	}
	if s.AnswerKey != "" {
		if _, err := ParseAnswerKeyMode(string(s.AnswerKey)); err != nil {
			return err
		}
	}
	if len(s.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	if s.Kind == KindPractice && len(s.Sections) != 1 {
		return fmt.Errorf("a practice page takes exactly one section, got %d", len(s.Sections))
	}
	total := 0
	for i := range s.Sections {
		if err := s.Sections[i].Validate(); err != nil {
			return err
		}
		total += s.Sections[i].Count
	}
	if total > MaxQuestions {
		return fmt.Errorf("%d questions requested, limit is %d", total, MaxQuestions)
	}
	return nil
}

// MaxQuestions bounds one assessment build
const MaxQuestions = 100

// Section is one built block of questions with its instructions line
type Section struct {
	Title        string               `json:"title"`
	Instructions string               `json:"instructions"`
	Questions    []*question.Question `json:"questions"`
}

// Marks totals the marks across the section
func (s *Section) Marks() int {
	total := 0
	for _, q := range s.Questions {
		total += q.Marks
	}
	return total
}

// Assessment is a finished document: sections of questions plus the answer
// key policy. Code is the short shareable handle.
type Assessment struct {
	ID           core.WorksheetID `json:"id"`
	Code         string           `json:"code"`
	Kind         Kind             `json:"kind"`
	Title        string           `json:"title"`
	Instructions string           `json:"instructions"`
	AnswerKey    AnswerKeyMode    `json:"answer_key"`
	Sections     []Section        `json:"sections"`
	Seed         int64            `json:"seed"`
	CreatedAt    core.Timestamp   `json:"created_at"`
}

// QuestionCount totals the questions across all sections
func (a *Assessment) QuestionCount() int {
	n := 0
	for i := range a.Sections {
		n += len(a.Sections[i].Questions)
	}
	return n
}

// TotalMarks totals the marks across all sections
func (a *Assessment) TotalMarks() int {
	total := 0
	for i := range a.Sections {
		total += a.Sections[i].Marks()
	}
	return total
}

// Questions flattens sections in document order
func (a *Assessment) Questions() []*question.Question {
	out := make([]*question.Question, 0, a.QuestionCount())
	for i := range a.Sections {
		out = append(out, a.Sections[i].Questions...)
	}
	return out
}

// HasKey reports whether an answer key section should render
func (a *Assessment) HasKey() bool {
	return a.AnswerKey != "" && a.AnswerKey != KeyNone
}
