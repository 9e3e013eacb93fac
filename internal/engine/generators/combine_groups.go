package generators

import (
	"context"
	"math"
	"strconv"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// CombineGroups gives two group means with different counts and asks for
// the mean across both. Group sizes are consecutive integers, so either
// mean can be nudged tick by tick to make the combined total divide by the
// joint count.
type CombineGroups struct{}

func NewCombineGroups() *CombineGroups { return &CombineGroups{} }

func (g *CombineGroups) Variation() question.Variation { return question.VariationCombineGroups }

// groupSizes returns the two group counts for a difficulty
func groupSizes(d question.Difficulty) (int, int) {
	switch d {
	case 1:
		return 3, 4
	case 2:
		return 4, 5
	case 3:
		return 5, 6
	case 4:
		return 6, 7
	}
	return 8, 9
}

func (g *CombineGroups) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	plan := engine.PlanValues(c, req.Difficulty, req.Rand)
	n1, n2 := groupSizes(req.Difficulty)
	mean1 := engine.DrawSingle(c, req.Difficulty, plan.MeanDecimals, req.Rand)
	mean2 := engine.DrawSingle(c, req.Difficulty, plan.MeanDecimals, req.Rand)

	lo, hi := engine.EffectiveRange(c, req.Difficulty)
	meanPow := math.Pow(10, float64(plan.MeanDecimals))
	m1t := int64(math.Round(mean1 * meanPow))
	m2t := int64(math.Round(mean2 * meanPow))
	loTick := int64(math.Ceil(lo*meanPow - 1e-9))
	hiTick := int64(math.Floor(hi*meanPow + 1e-9))

	m1t, m2t, ok := alignGroupMeans(m1t, m2t, int64(n1), int64(n2), loTick, hiTick)
	if !ok {
		return nil, core.ErrValueInfeasible
	}
	mean1 = float64(m1t) / meanPow
	mean2 = float64(m2t) / meanPow

	total1 := engine.Round(mean1*float64(n1), plan.MeanDecimals)
	total2 := engine.Round(mean2*float64(n2), plan.MeanDecimals)
	combinedTotal := engine.Round(total1+total2, plan.MeanDecimals)
	combined := float64((m1t*int64(n1)+m2t*int64(n2))/int64(n1+n2)) / meanPow

	labelA, labelB := c.PairLabel(0), c.PairLabel(1)
	mean1Text := engine.FormatValue(c.Unit, mean1, plan.MeanDecimals)
	mean2Text := engine.FormatValue(c.Unit, mean2, plan.MeanDecimals)
	given := labelA + " had " + strconv.Itoa(n1) + " " + c.ItemLabel + " with a mean of " + mean1Text + ". " +
		labelB + " had " + strconv.Itoa(n2) + " " + c.ItemLabel + " with a mean of " + mean2Text + "."

	ask := pickAsk(req.Rand, []string{
		"What is the mean across both groups combined?",
		"Find the mean " + c.AskNoun() + " across " + labelA + " and " + labelB + " together.",
		"What was the overall mean " + c.AskNoun() + "?",
	})
	scenario := engine.RenderScenario(c, req.Level, n1+n2, req.Names, req.Rand)
	text := engine.JoinSentences(scenario, given, ask)

	steps := []string{
		"Total for " + labelA + ": " + engine.FormatTotal(c.Unit, mean1, plan.MeanDecimals) + " × " +
			strconv.Itoa(n1) + " = " + engine.FormatTotal(c.Unit, total1, plan.MeanDecimals),
		"Total for " + labelB + ": " + engine.FormatTotal(c.Unit, mean2, plan.MeanDecimals) + " × " +
			strconv.Itoa(n2) + " = " + engine.FormatTotal(c.Unit, total2, plan.MeanDecimals),
		"Add the totals: " + engine.FormatSum(c.Unit, []float64{total1, total2}, plan.MeanDecimals) + " = " +
			engine.FormatTotal(c.Unit, combinedTotal, plan.MeanDecimals),
		"Divide by the combined count: " + engine.FormatTotal(c.Unit, combinedTotal, plan.MeanDecimals) + " ÷ " +
			strconv.Itoa(n1+n2) + " = " + engine.FormatValue(c.Unit, combined, plan.MeanDecimals),
	}

	data := []question.DataSet{
		{Label: labelA + " mean", Values: []float64{mean1}},
		{Label: labelB + " mean", Values: []float64{mean2}},
	}
	answer := engine.FormatValue(c.Unit, combined, plan.MeanDecimals)
	return assemble(req, g.Variation(), text, given, data, answer, combined, steps), nil
}

// alignGroupMeans nudges one group mean in ticks until the weighted total
// divides by the joint count. Consecutive counts are coprime with their
// sum, so walking one mean always reaches a solution unless the range is
// too narrow to move inside.
func alignGroupMeans(m1t, m2t, n1, n2, loTick, hiTick int64) (int64, int64, bool) {
	joint := n1 + n2
	for a := int64(0); a <= joint; a++ {
		for _, delta := range []int64{a, -a} {
			if cand := m2t + delta; cand >= loTick && cand <= hiTick &&
				(m1t*n1+cand*n2)%joint == 0 {
				return m1t, cand, true
			}
			if cand := m1t + delta; cand >= loTick && cand <= hiTick &&
				(cand*n1+m2t*n2)%joint == 0 {
				return cand, m2t, true
			}
		}
	}
	return m1t, m2t, false
}
