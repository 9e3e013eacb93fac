package engine

import (
	"math/rand"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
)

// Engine resolves which context a question lands in. Value drawing,
// narrative rendering and formatting live in the package-level helpers.
type Engine struct {
	bank *bank.Bank
}

// New creates an engine over a loaded bank
func New(b *bank.Bank) *Engine {
	return &Engine{bank: b}
}

// Bank exposes the underlying bank
func (e *Engine) Bank() *bank.Bank { return e.bank }

// CompatibleContexts lists every context able to host the variation
func (e *Engine) CompatibleContexts(v question.Variation) []*bank.Context {
	return e.bank.Compatible(v)
}

// PickContext resolves the context for one generation. An explicit ID must
// support the variation; an empty ID draws a random compatible context.
func (e *Engine) PickContext(rng *rand.Rand, v question.Variation, contextID core.ContextID) (*bank.Context, error) {
	if contextID != "" {
		c, err := e.bank.Get(contextID)
		if err != nil {
			return nil, err
		}
		if !c.Supports(v) {
			return nil, core.NewIncompatibleError(contextID.String(), v.String())
		}
		return c, nil
	}

	compatible := e.bank.Compatible(v)
	if len(compatible) == 0 {
		return nil, core.ErrNoCompatible
	}
	return compatible[rng.Intn(len(compatible))], nil
}
