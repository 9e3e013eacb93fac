package ports

import (
	"context"
	"math/rand"

	"questgen/domain/bank"
	"questgen/domain/question"
)

// GenerationRequest carries everything a variation generator needs: the
// resolved context, the presentation knobs and a seeded RNG stream.
type GenerationRequest struct {
	Context    *bank.Context
	Level      question.Level
	Difficulty question.Difficulty
	Seed       int64
	Rand       *rand.Rand
	Names      []string
}

// GeneratorPort produces one variation of question. Implementations are
// registered by variation; all of them must be deterministic under the
// request's RNG stream.
type GeneratorPort interface {
	// Variation names the family member this generator produces
	Variation() question.Variation

	// Generate builds a complete question with answer and solution steps
	Generate(ctx context.Context, req GenerationRequest) (*question.Question, error)
}
