package generators

import (
	"context"
	"strconv"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// TargetValue asks which value must come next to land the mean on a target.
// The target is derived from an actual extended set, so the needed value
// always exists inside the context's range.
type TargetValue struct{}

func NewTargetValue() *TargetValue { return &TargetValue{} }

func (g *TargetValue) Variation() question.Variation { return question.VariationTargetValue }

func (g *TargetValue) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	plan := engine.PlanValues(c, req.Difficulty, req.Rand)
	lo, hi := engine.EffectiveRange(c, req.Difficulty)

	var combined []float64
	found := false
	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		values := engine.DrawValues(c, req.Difficulty, plan, req.Rand)
		next := engine.DrawSingle(c, req.Difficulty, plan.DataDecimals, req.Rand)
		candidate := append(values, next)
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
	needed := combined[len(combined)-1]
	target := engine.Round(meanOf(combined), plan.MeanDecimals)
	needTotal := engine.Round(sumOf(combined), plan.MeanDecimals)
	curTotal := engine.Round(sumOf(base), plan.DataDecimals)
	targetText := engine.FormatValue(c.Unit, target, plan.MeanDecimals)

	ask := pickAsk(req.Rand, []string{
		"What must the next value be?",
		"Find the value needed.",
		"What value is needed?",
	})
	scenario := engine.RenderScenario(c, req.Level, len(base), req.Names, req.Rand)
	dataLine := engine.DataSentence(c, base, plan.DataDecimals)
	targetLine := "The target mean " + c.AskNoun() + " is " + targetText + " after one more value."
	text := engine.JoinSentences(scenario, dataLine, targetLine, ask)

	steps := []string{
		"Multiply the target mean by the new count: " + targetText + " × " + strconv.Itoa(len(combined)) +
			" = " + engine.FormatTotal(c.Unit, needTotal, plan.MeanDecimals),
		"Add the current values: " + engine.FormatSum(c.Unit, base, plan.DataDecimals) + " = " +
			engine.FormatTotal(c.Unit, curTotal, plan.DataDecimals),
		"Subtract to find the needed value: " + engine.FormatTotal(c.Unit, needTotal, plan.MeanDecimals) + " - " +
			engine.FormatTotal(c.Unit, curTotal, plan.DataDecimals) + " = " +
			engine.FormatValue(c.Unit, needed, plan.DataDecimals),
	}

	data := []question.DataSet{{Values: base}}
	answer := engine.FormatValue(c.Unit, needed, plan.DataDecimals)
	return assemble(req, g.Variation(), text, engine.JoinSentences(dataLine, targetLine), data, answer, needed, steps), nil
}
