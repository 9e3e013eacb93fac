package generators

import (
	"context"

	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/ports"
)

// Calculate produces the plain "work out the mean" question: a full data
// set is shown and the student adds, counts and divides.
type Calculate struct{}

func NewCalculate() *Calculate { return &Calculate{} }

func (g *Calculate) Variation() question.Variation { return question.VariationCalculate }

func (g *Calculate) Generate(_ context.Context, req ports.GenerationRequest) (*question.Question, error) {
	c := req.Context

	values, plan, err := engine.GenerateCleanSet(c, req.Difficulty, req.Rand)
	if err != nil {
		return nil, err
	}
	mean := engine.Round(meanOf(values), plan.MeanDecimals)

	ask := pickAsk(req.Rand, []string{
		"Calculate the mean " + c.AskNoun() + ".",
		"What was the mean " + c.AskNoun() + "?",
		"Find the mean " + c.AskNoun() + ".",
	})
	scenario := engine.RenderScenario(c, req.Level, len(values), req.Names, req.Rand)
	dataLine := engine.DataSentence(c, values, plan.DataDecimals)
	text := engine.JoinSentences(scenario, dataLine, ask)

	steps := []string{
		sumStep(c, values, plan.DataDecimals),
		countStep(c, len(values)),
		divideStep(c, sumOf(values), len(values), mean, plan.DataDecimals, plan.MeanDecimals),
	}

	data := []question.DataSet{{Values: values}}
	answer := engine.FormatValue(c.Unit, mean, plan.MeanDecimals)
	return assemble(req, g.Variation(), text, dataLine, data, answer, mean, steps), nil
}
