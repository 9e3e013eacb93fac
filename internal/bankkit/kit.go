// Package bankkit carries the built-in context bank: the context, skill and
// name data compiled into the binary, plus a writer that seeds the workbook
// files from it. The built-in bank keeps the generator usable before any
// workbook has been configured, and gives tests a full bank without fixtures.
package bankkit

import (
	"context"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/ports"
)

// SourceName labels the built-in bank in logs and the status endpoint
const SourceName = "builtin"

// BuiltinSkills returns the skill groupings used by quizzes and tests.
func BuiltinSkills() []bank.Skill {
	return []bank.Skill{
		{
			ID:          core.SkillID("mean-basics"),
			Name:        "Mean Basics",
			Description: "Calculate the mean of a data set",
			Variations:  []question.Variation{question.VariationCalculate},
			Difficulty:  question.Difficulty(2),
		},
		{
			ID:          core.SkillID("mean-totals"),
			Name:        "Means and Totals",
			Description: "Move between a mean, a total and a count",
			Variations: []question.Variation{
				question.VariationFindTotal,
				question.VariationMissingCount,
			},
			Difficulty: question.Difficulty(2),
		},
		{
			ID:          core.SkillID("missing-values"),
			Name:        "Missing Values",
			Description: "Recover a hidden value from the mean",
			Variations:  []question.Variation{question.VariationMissingValue},
			Difficulty:  question.Difficulty(3),
		},
		{
			ID:          core.SkillID("comparing-means"),
			Name:        "Comparing Means",
			Description: "Compare the means of two data sets",
			Variations:  []question.Variation{question.VariationCompare},
			Difficulty:  question.Difficulty(3),
		},
		{
			ID:          core.SkillID("changing-means"),
			Name:        "Changing Means",
			Description: "Work out how a new value moves the mean",
			Variations: []question.Variation{
				question.VariationNewValue,
				question.VariationTargetValue,
			},
			Difficulty: question.Difficulty(4),
		},
		{
			ID:          core.SkillID("weighted-means"),
			Name:        "Weighted Means",
			Description: "Combine group means into an overall mean",
			Variations:  []question.Variation{question.VariationCombineGroups},
			Difficulty:  question.Difficulty(4),
		},
	}
}

// BuiltinNames returns the pool of student-facing character names.
func BuiltinNames() []string {
	return []string{
		"Ms. Lee",
		"Mr. Chen",
		"Dr. Singh",
		"Mrs. Okafor",
		"Mr. Alvarez",
		"Ms. Patel",
		"Coach Reed",
		"Dr. Novak",
		"Ms. Romero",
		"Mr. Haddad",
		"Mrs. Kowalski",
		"Mr. Tanaka",
		"Ms. Fraser",
		"Dr. Mensah",
		"Mr. Bergström",
		"Ms. Delgado",
		"Coach Iqbal",
		"Mrs. Whitfield",
		"Mr. O'Connell",
		"Ms. Nakamura",
		"Dr. Castillo",
		"Mr. Varga",
		"Ms. Abara",
		"Mrs. Lindqvist",
	}
}

// BuiltinBank assembles and indexes the built-in bank.
func BuiltinBank() (*bank.Bank, error) {
	return bank.New(SourceName, BuiltinContexts(), BuiltinSkills(), BuiltinNames())
}

// Port is the BankPort backed by the compiled-in data. It is the fallback
// source when no workbook path is configured.
type Port struct{}

// NewPort returns the built-in bank port.
func NewPort() *Port { return &Port{} }

// Load assembles the built-in bank. The context is accepted for interface
// symmetry; assembly does no I/O.
func (p *Port) Load(_ context.Context) (*bank.Bank, error) {
	return BuiltinBank()
}

// Describe names the source for logs and the status endpoint
func (p *Port) Describe() string { return SourceName }

var _ ports.BankPort = (*Port)(nil)
