package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic
// question output. The same seed always yields the same question.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// QuestionStream creates a deterministic RNG stream for one generation.
	// Variation and context ID fold into the stream so regenerating with a
	// different context cannot replay the same value sequence.
	QuestionStream(ctx context.Context, variation, contextID string, seed int64) (*rand.Rand, error)

	// NextSeed draws a fresh base seed for "new data" regeneration
	NextSeed() int64
}
