package generators

import (
	"context"
	"strconv"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// MissingCount states a total and a mean and asks for the number of values.
// The total is built as mean times count, so the division always lands on a
// whole number. A zero mean would make the division meaningless, so the
// mean is redrawn until it clears zero.
type MissingCount struct{}

func NewMissingCount() *MissingCount { return &MissingCount{} }

func (g *MissingCount) Variation() question.Variation { return question.VariationMissingCount }

func (g *MissingCount) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	plan := engine.PlanValues(c, req.Difficulty, req.Rand)
	count := plan.Count

	var mean float64
	found := false
	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		mean = engine.DrawSingle(c, req.Difficulty, plan.MeanDecimals, req.Rand)
		if mean != 0 {
			found = true
			break
		}
	}
	if !found {
		return nil, core.ErrValueInfeasible
	}
	total := engine.Round(mean*float64(count), plan.MeanDecimals)

	totalText := engine.FormatValue(c.Unit, total, plan.MeanDecimals)
	meanText := engine.FormatValue(c.Unit, mean, plan.MeanDecimals)
	given := "The " + c.ItemLabel + " came to " + totalText + " in total, with a mean of " + meanText + "."

	ask := pickAsk(req.Rand, []string{
		"How many " + c.ItemLabel + " were recorded?",
		"Find the number of " + c.ItemLabel + ".",
		"How many " + c.ItemLabel + " were there?",
	})
	scenario := engine.RenderScenario(c, req.Level, count, req.Names, req.Rand)
	text := engine.JoinSentences(scenario, given, ask)

	steps := []string{
		"Divide the total by the mean: " + engine.FormatTotal(c.Unit, total, plan.MeanDecimals) + " ÷ " +
			engine.FormatTotal(c.Unit, mean, plan.MeanDecimals) + " = " + strconv.Itoa(count),
	}

	answer := strconv.Itoa(count) + " " + c.ItemLabel
	return assemble(req, g.Variation(), text, given, nil, answer, float64(count), steps), nil
}
