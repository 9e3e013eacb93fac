package question

import (
	"questgen/domain/core"
)

// DataSet is one named list of values a question is asked about. Simple
// variations carry one, compare and combine_groups carry two.
type DataSet struct {
	Label  string    `json:"label,omitempty"`
	Values []float64 `json:"values"`
}

// Sum returns the total of the values
func (d DataSet) Sum() float64 {
	var total float64
	for _, v := range d.Values {
		total += v
	}
	return total
}

// Len returns the number of values
func (d DataSet) Len() int { return len(d.Values) }

// Question is the finished artifact handed to the UI, the history store and
// the assessment builder.
type Question struct {
	ID          core.QuestionID `json:"id"`
	Variation   Variation       `json:"variation"`
	ContextID   core.ContextID  `json:"context_id"`
	ContextName string          `json:"context_name"`
	Category    string          `json:"category"`
	Level       Level           `json:"level"`
	Difficulty  Difficulty      `json:"difficulty"`
	Seed        int64           `json:"seed"`
	Text        string          `json:"question_text"`
	GivenData   string          `json:"given_data"`
	Data        []DataSet       `json:"data"`
	Answer      string          `json:"answer"`
	AnswerValue float64         `json:"answer_value"`
	Steps       []string        `json:"solution_steps"`
	Marks       int             `json:"total_marks"`
	CreatedAt   core.Timestamp  `json:"created_at"`
}

// PrimaryData returns the first data set, the only one for simple variations
func (q *Question) PrimaryData() DataSet {
	if len(q.Data) == 0 {
		return DataSet{}
	}
	return q.Data[0]
}

// HasSteps reports whether a worked solution is attached
func (q *Question) HasSteps() bool { return len(q.Steps) > 0 }
