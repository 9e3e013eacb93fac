package generators

import (
	"context"
	"strconv"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// Compare sets two equally sized data runs against each other. The second
// set is redrawn until the two means sit a difficulty-scaled distance
// apart, so easy questions never hinge on a hairline difference.
type Compare struct{}

func NewCompare() *Compare { return &Compare{} }

func (g *Compare) Variation() question.Variation { return question.VariationCompare }

// minGapFactor widens the required mean gap as difficulty drops
func minGapFactor(d question.Difficulty) float64 {
	switch d {
	case 1:
		return 0.15
	case 2:
		return 0.12
	case 3:
		return 0.08
	case 4:
		return 0.05
	}
	return 0.02
}

func (g *Compare) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	plan := engine.PlanValues(c, req.Difficulty, req.Rand)
	lo, hi := engine.EffectiveRange(c, req.Difficulty)

	setA, err := cleanSetWithPlan(c, req.Difficulty, plan, lo, hi, req.Rand)
	if err != nil {
		return nil, err
	}
	meanA := engine.Round(meanOf(setA), plan.MeanDecimals)

	minGap := c.Span() * minGapFactor(req.Difficulty)
	var setB []float64
	var meanB float64
	found := false
	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		candidate, err := cleanSetWithPlan(c, req.Difficulty, plan, lo, hi, req.Rand)
		if err != nil {
			return nil, err
		}
		m := engine.Round(meanOf(candidate), plan.MeanDecimals)
		gap := m - meanA
		if gap < 0 {
			gap = -gap
		}
		if gap >= minGap && m != meanA {
			setB, meanB = candidate, m
			found = true
			break
		}
	}
	if !found {
		return nil, core.ErrValueInfeasible
	}

	labelA, labelB := c.PairLabel(0), c.PairLabel(1)
	ask := pickAsk(req.Rand, []string{
		"Which had the higher mean " + c.AskNoun() + ", and by how much?",
		"Compare the mean " + c.AskNoun() + " of " + labelA + " and " + labelB + ". Which was higher, and by how much?",
	})
	scenario := engine.RenderScenario(c, req.Level, len(setA), req.Names, req.Rand)
	lineA := engine.LabeledDataSentence(c, labelA, setA, plan.DataDecimals)
	lineB := engine.LabeledDataSentence(c, labelB, setB, plan.DataDecimals)
	text := engine.JoinSentences(scenario, lineA, lineB, ask)

	winner := labelA
	diff := meanA - meanB
	if meanB > meanA {
		winner = labelB
		diff = meanB - meanA
	}
	diff = engine.Round(diff, plan.MeanDecimals)

	n := strconv.Itoa(len(setA))
	steps := []string{
		"Mean of " + labelA + ": " + engine.FormatTotal(c.Unit, engine.Round(sumOf(setA), plan.DataDecimals), plan.DataDecimals) +
			" ÷ " + n + " = " + engine.FormatValue(c.Unit, meanA, plan.MeanDecimals),
		"Mean of " + labelB + ": " + engine.FormatTotal(c.Unit, engine.Round(sumOf(setB), plan.DataDecimals), plan.DataDecimals) +
			" ÷ " + n + " = " + engine.FormatValue(c.Unit, meanB, plan.MeanDecimals),
		"Subtract the smaller mean from the larger: " + engine.FormatValue(c.Unit, max(meanA, meanB), plan.MeanDecimals) +
			" - " + engine.FormatValue(c.Unit, min(meanA, meanB), plan.MeanDecimals) + " = " +
			engine.FormatValue(c.Unit, diff, plan.MeanDecimals),
	}

	data := []question.DataSet{
		{Label: labelA, Values: setA},
		{Label: labelB, Values: setB},
	}
	answer := winner + " by " + engine.FormatValue(c.Unit, diff, plan.MeanDecimals)
	return assemble(req, g.Variation(), text, engine.JoinSentences(lineA, lineB), data, answer, diff, steps), nil
}
