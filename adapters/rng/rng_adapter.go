// Package rng provides the deterministic random stream adapter. A question
// is fully determined by its seed, variation and context, so a stored seed
// can replay the exact question later.
package rng

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"questgen/ports"
)

// RNGAdapter implements ports.RNGPort
type RNGAdapter struct {
	mu   sync.Mutex
	base *rand.Rand
}

// NewRNGAdapter creates an adapter whose NextSeed sequence starts from the
// current time
func NewRNGAdapter() *RNGAdapter {
	return &RNGAdapter{base: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewRNGAdapterSeeded pins the NextSeed sequence, used by tests
func NewRNGAdapterSeeded(seed int64) *RNGAdapter {
	return &RNGAdapter{base: rand.New(rand.NewSource(seed))}
}

// SeededStream creates a deterministic random number generator for a named operation
func (r *RNGAdapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if name == "" {
		return nil, fmt.Errorf("stream name is empty")
	}
	return rand.New(rand.NewSource(seed + int64(hashString(name)))), nil
}

// QuestionStream creates a deterministic RNG stream for one generation.
// Variation and context fold into the seed so the same base seed cannot
// replay one value sequence across different setups.
func (r *RNGAdapter) QuestionStream(ctx context.Context, variation, contextID string, seed int64) (*rand.Rand, error) {
	if variation == "" {
		return nil, fmt.Errorf("variation is empty")
	}
	folded := seed
	folded += int64(hashString(variation))
	if contextID != "" {
		folded += int64(hashString(contextID))
	}
	return rand.New(rand.NewSource(folded)), nil
}

// NextSeed draws a fresh base seed for "new data" regeneration
func (r *RNGAdapter) NextSeed() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.base.Int63()
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}

var _ ports.RNGPort = (*RNGAdapter)(nil)
