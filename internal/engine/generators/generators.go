// Package generators holds one generator per question variation. All of
// them draw from the request's RNG stream in a fixed order (values first,
// ask phrasing second, narrative casting last) so a seed fully determines
// the question while levels only change the dressing.
package generators

import (
	"math/rand"
	"strconv"

	"github.com/montanaflynn/stats"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// All returns the full generator set keyed by variation
func All() map[question.Variation]ports.GeneratorPort {
	gens := []ports.GeneratorPort{
		NewCalculate(),
		NewMissingValue(),
		NewCompare(),
		NewMissingCount(),
		NewFindTotal(),
		NewNewValue(),
		NewTargetValue(),
		NewCombineGroups(),
	}
	out := make(map[question.Variation]ports.GeneratorPort, len(gens))
	for _, g := range gens {
		out[g.Variation()] = g
	}
	return out
}

// marksFor allocates marks from the variation's base load plus a difficulty
// bonus: +1 from difficulty 3, +2 at difficulty 5.
func marksFor(v question.Variation, d question.Difficulty) int {
	base := 2
	switch v {
	case question.VariationMissingValue, question.VariationMissingCount, question.VariationNewValue:
		base = 3
	case question.VariationCompare, question.VariationTargetValue, question.VariationCombineGroups:
		base = 4
	}
	return base + (d.Int()-1)/2
}

// assemble fills the parts every generator produces the same way
func assemble(req ports.GenerationRequest, v question.Variation, text, givenData string, data []question.DataSet, answer string, answerValue float64, steps []string) *question.Question {
	c := req.Context
	return &question.Question{
		ID:          core.QuestionID(core.NewID()),
		Variation:   v,
		ContextID:   c.ID,
		ContextName: c.Name,
		Category:    c.Category,
		Level:       req.Level,
		Difficulty:  req.Difficulty,
		Seed:        req.Seed,
		Text:        text,
		GivenData:   givenData,
		Data:        data,
		Answer:      answer,
		AnswerValue: answerValue,
		Steps:       steps,
		Marks:       marksFor(v, req.Difficulty),
		CreatedAt:   core.Now(),
	}
}

func pickAsk(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// maxSetAttempts bounds redraw loops in the two-set generators
const maxSetAttempts = 25

// cleanSetWithPlan draws a set under an already fixed plan, used when two
// sets must share one count and precision.
func cleanSetWithPlan(c *bank.Context, d question.Difficulty, plan engine.ValuePlan, lo, hi float64, rng *rand.Rand) ([]float64, error) {
	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		values := engine.DrawValues(c, d, plan, rng)
		if adjusted, ok := engine.AdjustForCleanMean(values, plan, lo, hi); ok {
			return adjusted, nil
		}
	}
	return nil, core.ErrValueInfeasible
}

// sumOf totals a data set through the stats library, which only errors on
// empty input; generators never produce empty sets.
func sumOf(values []float64) float64 {
	s, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return s
}

func meanOf(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// sumStep writes the addition line: "Add all tips: $45 + $52 = $97"
func sumStep(c *bank.Context, values []float64, dataDecimals int) string {
	total := engine.Round(sumOf(values), dataDecimals)
	return "Add all " + c.ItemLabel + ": " +
		engine.FormatSum(c.Unit, values, dataDecimals) + " = " +
		engine.FormatTotal(c.Unit, total, dataDecimals)
}

// countStep writes the counting line: "Count the number of tips: 5"
func countStep(c *bank.Context, n int) string {
	return "Count the number of " + c.ItemLabel + ": " + strconv.Itoa(n)
}

// divideStep writes the division line: "Divide sum by count: $250 ÷ 5 = $50"
func divideStep(c *bank.Context, total float64, n int, mean float64, dataDecimals, meanDecimals int) string {
	return "Divide sum by count: " +
		engine.FormatTotal(c.Unit, engine.Round(total, dataDecimals), dataDecimals) + " ÷ " + strconv.Itoa(n) + " = " +
		engine.FormatValue(c.Unit, mean, meanDecimals)
}
