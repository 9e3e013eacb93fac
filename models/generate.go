package models

import (
	"strings"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
)

// GenerateRequest is the JSON body of POST /api/questions/generate
type GenerateRequest struct {
	Variation  string `json:"variation"`
	ContextID  string `json:"context_id,omitempty"`
	Level      string `json:"level,omitempty"`
	Difficulty int    `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
	ShowAnswer bool   `json:"show_answer,omitempty"`
}

// Params converts the request into engine parameters. Defaults for level,
// difficulty and seed are applied by the generator service, not here.
func (r GenerateRequest) Params() engine.Params {
	return engine.Params{
		Variation:  question.Variation(strings.ToLower(strings.TrimSpace(r.Variation))),
		ContextID:  core.ContextID(strings.TrimSpace(r.ContextID)),
		Level:      question.Level(strings.ToLower(strings.TrimSpace(r.Level))),
		Difficulty: question.Difficulty(r.Difficulty),
		Seed:       r.Seed,
	}
}

// QuestionResponse shapes one question for the API. The answer block is
// withheld unless the request asked to show it.
type QuestionResponse struct {
	ID          string             `json:"id"`
	Variation   string             `json:"variation"`
	ContextID   string             `json:"context_id"`
	ContextName string             `json:"context_name"`
	Category    string             `json:"category"`
	Level       string             `json:"level"`
	Difficulty  int                `json:"difficulty"`
	Label       string             `json:"difficulty_label"`
	Seed        int64              `json:"seed"`
	Text        string             `json:"question_text"`
	GivenData   string             `json:"given_data"`
	Data        []question.DataSet `json:"data"`
	Answer      string             `json:"answer,omitempty"`
	AnswerValue *float64           `json:"answer_value,omitempty"`
	Steps       []string           `json:"solution_steps,omitempty"`
	Marks       int                `json:"total_marks"`
	CreatedAt   core.Timestamp     `json:"created_at"`
}

// NewQuestionResponse builds the API view of a question
func NewQuestionResponse(q *question.Question, showAnswer bool) QuestionResponse {
	resp := QuestionResponse{
		ID:          q.ID.String(),
		Variation:   string(q.Variation),
		ContextID:   q.ContextID.String(),
		ContextName: q.ContextName,
		Category:    q.Category,
		Level:       string(q.Level),
		Difficulty:  q.Difficulty.Int(),
		Label:       q.Difficulty.Label(),
		Seed:        q.Seed,
		Text:        q.Text,
		GivenData:   q.GivenData,
		Data:        q.Data,
		Marks:       q.Marks,
		CreatedAt:   q.CreatedAt,
	}
	if showAnswer {
		resp.Answer = q.Answer
		value := q.AnswerValue
		resp.AnswerValue = &value
		resp.Steps = q.Steps
	}
	return resp
}
