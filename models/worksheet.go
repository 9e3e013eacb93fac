package models

import (
	"strings"

	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/domain/question"
)

// WorksheetRequest is the JSON body of POST /api/worksheets
type WorksheetRequest struct {
	Kind      string           `json:"kind"`
	Title     string           `json:"title,omitempty"`
	AnswerKey string           `json:"answer_key,omitempty"`
	Seed      int64            `json:"seed,omitempty"`
	Sections  []SectionRequest `json:"sections"`
}

// SectionRequest is one requested block of questions. Either a variation or
// a skill id is named; skill sections rotate through the skill's variations.
type SectionRequest struct {
	Title      string `json:"title,omitempty"`
	SkillID    string `json:"skill_id,omitempty"`
	Variation  string `json:"variation,omitempty"`
	ContextID  string `json:"context_id,omitempty"`
	Count      int    `json:"count"`
	Difficulty int    `json:"difficulty,omitempty"`
	Level      string `json:"level,omitempty"`
}

// Spec converts the request into a build spec, filling per-section level
// and difficulty defaults
func (r WorksheetRequest) Spec() assessment.Spec {
	sections := make([]assessment.SectionSpec, len(r.Sections))
	for i, s := range r.Sections {
		sections[i] = s.spec()
	}
	return assessment.Spec{
		Kind:      assessment.Kind(strings.ToLower(strings.TrimSpace(r.Kind))),
		Title:     strings.TrimSpace(r.Title),
		AnswerKey: assessment.AnswerKeyMode(strings.ToLower(strings.TrimSpace(r.AnswerKey))),
		Sections:  sections,
		Seed:      r.Seed,
	}
}

func (s SectionRequest) spec() assessment.SectionSpec {
	difficulty := question.Difficulty(s.Difficulty)
	if difficulty == 0 {
		difficulty = question.DefaultDifficulty
	}
	level := question.Level(strings.ToLower(strings.TrimSpace(s.Level)))
	if level == "" {
		level = question.LevelStandard
	}
	return assessment.SectionSpec{
		Title:      strings.TrimSpace(s.Title),
		SkillID:    core.SkillID(strings.TrimSpace(s.SkillID)),
		Variation:  question.Variation(strings.ToLower(strings.TrimSpace(s.Variation))),
		ContextID:  core.ContextID(strings.TrimSpace(s.ContextID)),
		Count:      s.Count,
		Difficulty: difficulty,
		Level:      level,
	}
}

// WorksheetResponse is the JSON reply after building or listing assessments
type WorksheetResponse struct {
	ID            string         `json:"id"`
	Code          string         `json:"code"`
	Kind          string         `json:"kind"`
	Title         string         `json:"title"`
	QuestionCount int            `json:"question_count"`
	TotalMarks    int            `json:"total_marks"`
	AnswerKey     string         `json:"answer_key"`
	URL           string         `json:"url"`
	Seed          int64          `json:"seed"`
	CreatedAt     core.Timestamp `json:"created_at"`
	HTML          string         `json:"html,omitempty"`
}

// NewWorksheetResponse builds the API view of a stored assessment. The
// rendered HTML is attached by the handler when the caller wants it inline.
func NewWorksheetResponse(a *assessment.Assessment) WorksheetResponse {
	return WorksheetResponse{
		ID:            a.ID.String(),
		Code:          a.Code,
		Kind:          string(a.Kind),
		Title:         a.Title,
		QuestionCount: a.QuestionCount(),
		TotalMarks:    a.TotalMarks(),
		AnswerKey:     string(a.AnswerKey),
		URL:           "/worksheets/" + a.Code,
		Seed:          a.Seed,
		CreatedAt:     a.CreatedAt,
	}
}
