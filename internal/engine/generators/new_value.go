package generators

import (
	"context"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// NewValue shows a data run, then one more value arrives and the student
// recomputes the mean over all of them. The draw loop adjusts the combined
// set, preferring the newcomer, until the bigger mean divides out cleanly.
type NewValue struct{}

func NewNewValue() *NewValue { return &NewValue{} }

func (g *NewValue) Variation() question.Variation { return question.VariationNewValue }

func (g *NewValue) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	plan := engine.PlanValues(c, req.Difficulty, req.Rand)
	lo, hi := engine.EffectiveRange(c, req.Difficulty)

	var combined []float64
	found := false
	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		values := engine.DrawValues(c, req.Difficulty, plan, req.Rand)
		extra := engine.DrawSingle(c, req.Difficulty, plan.DataDecimals, req.Rand)
		candidate := append(values, extra)
		if adjusted, ok := engine.AdjustForCleanMean(candidate, plan, lo, hi); ok {
			combined = adjusted
			found = true
			break
		}
	}
	if !found {
		return nil, core.ErrValueInfeasible
	}

	base := combined[:len(combined)-1]
	extra := combined[len(combined)-1]
	newMean := engine.Round(meanOf(combined), plan.MeanDecimals)
	total := engine.Round(sumOf(combined), plan.DataDecimals)

	ask := pickAsk(req.Rand, []string{
		"What is the new mean " + c.AskNoun() + "?",
		"Calculate the new mean " + c.AskNoun() + ".",
		"Find the new mean.",
	})
	scenario := engine.RenderScenario(c, req.Level, len(base), req.Names, req.Rand)
	dataLine := engine.DataSentence(c, base, plan.DataDecimals)
	newLine := "A new value of " + engine.FormatValue(c.Unit, extra, plan.DataDecimals) + " was then recorded."
	text := engine.JoinSentences(scenario, dataLine, newLine, ask)

	steps := []string{
		"Add all " + c.ItemLabel + " including the new value: " +
			engine.FormatSum(c.Unit, combined, plan.DataDecimals) + " = " +
			engine.FormatTotal(c.Unit, total, plan.DataDecimals),
		countStep(c, len(combined)),
		divideStep(c, total, len(combined), newMean, plan.DataDecimals, plan.MeanDecimals),
	}

	data := []question.DataSet{
		{Values: base},
		{Label: "New value", Values: []float64{extra}},
	}
	answer := engine.FormatValue(c.Unit, newMean, plan.MeanDecimals)
	return assemble(req, g.Variation(), text, engine.JoinSentences(dataLine, newLine), data, answer, newMean, steps), nil
}
