package generators

import (
	"context"
	"strconv"

	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// MissingValue hides one member of the data set behind a "?" and states the
// mean. The hidden value is always a real member of the drawn set, so the
// question is feasible by construction.
type MissingValue struct{}

func NewMissingValue() *MissingValue { return &MissingValue{} }

func (g *MissingValue) Variation() question.Variation { return question.VariationMissingValue }

func (g *MissingValue) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	values, plan, err := engine.GenerateCleanSet(c, req.Difficulty, req.Rand)
	if err != nil {
		return nil, err
	}
	maskIdx := req.Rand.Intn(len(values))
	missing := values[maskIdx]

	known := make([]float64, 0, len(values)-1)
	for i, v := range values {
		if i != maskIdx {
			known = append(known, v)
		}
	}

	total := engine.Round(sumOf(values), plan.DataDecimals)
	knownTotal := engine.Round(sumOf(known), plan.DataDecimals)
	mean := engine.Round(meanOf(values), plan.MeanDecimals)
	meanText := engine.FormatValue(c.Unit, mean, plan.MeanDecimals)

	ask := pickAsk(req.Rand, []string{
		"What was the missing value?",
		"Find the missing value.",
		"Work out the missing value.",
	})
	scenario := engine.RenderScenario(c, req.Level, len(values), req.Names, req.Rand)
	dataLine := engine.MaskedDataSentence(c, values, plan.DataDecimals, maskIdx)
	meanLine := "The mean " + c.AskNoun() + " was " + meanText + "."
	text := engine.JoinSentences(scenario, dataLine, meanLine, ask)

	steps := []string{
		"Multiply the mean by the count: " + meanText + " × " + strconv.Itoa(len(values)) + " = " +
			engine.FormatTotal(c.Unit, total, plan.DataDecimals),
		"Add the known values: " + engine.FormatSum(c.Unit, known, plan.DataDecimals) + " = " +
			engine.FormatTotal(c.Unit, knownTotal, plan.DataDecimals),
		"Subtract to find the missing value: " + engine.FormatTotal(c.Unit, total, plan.DataDecimals) + " - " +
			engine.FormatTotal(c.Unit, knownTotal, plan.DataDecimals) + " = " +
			engine.FormatValue(c.Unit, missing, plan.DataDecimals),
	}

	data := []question.DataSet{{Values: values}}
	answer := engine.FormatValue(c.Unit, missing, plan.DataDecimals)
	return assemble(req, g.Variation(), text, engine.JoinSentences(dataLine, meanLine), data, answer, missing, steps), nil
}
