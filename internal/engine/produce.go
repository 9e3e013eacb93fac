package engine

import (
	"context"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/ports"
)

// Params identifies one question build. A zero ContextID draws a random
// compatible context; Seed pins the whole draw sequence.
type Params struct {
	Variation  question.Variation
	ContextID  core.ContextID
	Level      question.Level
	Difficulty question.Difficulty
	Seed       int64
}

// Producer runs the full single-question pipeline: seed the stream, resolve
// the context, hand off to the variation generator.
type Producer struct {
	engine     *Engine
	generators map[question.Variation]ports.GeneratorPort
	rng        ports.RNGPort
}

// NewProducer wires a producer over a loaded bank
func NewProducer(eng *Engine, generators map[question.Variation]ports.GeneratorPort, rng ports.RNGPort) *Producer {
	return &Producer{engine: eng, generators: generators, rng: rng}
}

// Engine exposes the context engine behind the producer
func (p *Producer) Engine() *Engine { return p.engine }

// NextSeed draws a fresh base seed for unseeded requests
func (p *Producer) NextSeed() int64 { return p.rng.NextSeed() }

// Variations lists the registered generator variations
func (p *Producer) Variations() []question.Variation {
	out := make([]question.Variation, 0, len(p.generators))
	for _, v := range question.AllVariations() {
		if _, ok := p.generators[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Produce builds one question. The variation and context fold into the RNG
// stream, so the same params always reproduce the same question.
func (p *Producer) Produce(ctx context.Context, params Params) (*question.Question, error) {
	gen, ok := p.generators[params.Variation]
	if !ok {
		return nil, core.NewVariationError(string(params.Variation))
	}

	stream, err := p.rng.QuestionStream(ctx, params.Variation.String(), params.ContextID.String(), params.Seed)
	if err != nil {
		return nil, err
	}

	c, err := p.engine.PickContext(stream, params.Variation, params.ContextID)
	if err != nil {
		return nil, err
	}

	return gen.Generate(ctx, ports.GenerationRequest{
		Context:    c,
		Level:      params.Level,
		Difficulty: params.Difficulty,
		Seed:       params.Seed,
		Rand:       stream,
		Names:      p.engine.Bank().Names(),
	})
}
