package generators

import (
	"context"
	"strconv"

	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// FindTotal runs the mean backwards: the mean and the count are given and
// the student recovers the sum.
type FindTotal struct{}

func NewFindTotal() *FindTotal { return &FindTotal{} }

func (g *FindTotal) Variation() question.Variation { return question.VariationFindTotal }

func (g *FindTotal) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	plan := engine.PlanValues(c, req.Difficulty, req.Rand)
	count := plan.Count
	mean := engine.DrawSingle(c, req.Difficulty, plan.MeanDecimals, req.Rand)
	total := engine.Round(mean*float64(count), plan.MeanDecimals)

	meanText := engine.FormatValue(c.Unit, mean, plan.MeanDecimals)
	given := "The mean " + c.AskNoun() + " over " + strconv.Itoa(count) + " " + c.PeriodLabel +
		" was " + meanText + "."

	ask := pickAsk(req.Rand, []string{
		"What was the total?",
		"Work out the total across all " + strconv.Itoa(count) + " " + c.PeriodLabel + ".",
		"Find the total.",
	})
	scenario := engine.RenderScenario(c, req.Level, count, req.Names, req.Rand)
	text := engine.JoinSentences(scenario, given, ask)

	steps := []string{
		"Multiply the mean by the count: " + engine.FormatTotal(c.Unit, mean, plan.MeanDecimals) + " × " +
			strconv.Itoa(count) + " = " + engine.FormatValue(c.Unit, total, plan.MeanDecimals),
	}

	answer := engine.FormatValue(c.Unit, total, plan.MeanDecimals)
	return assemble(req, g.Variation(), text, given, nil, answer, total, steps), nil
}
