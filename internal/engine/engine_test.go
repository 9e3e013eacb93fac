package engine

import (
	"errors"
	"math/rand"
	"testing"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
)

func tipsContext() *bank.Context {
	return &bank.Context{
		ID:          core.ContextID("server-tips"),
		Name:        "Server Tips",
		Category:    "Earnings",
		Unit:        bank.Unit{Symbol: "$", Position: bank.UnitPrefix},
		ValueMin:    20,
		ValueMax:    90,
		Decimals:    2,
		ItemLabel:   "tips",
		PeriodLabel: "days",
		DataLabel:   "Tips over {count} {period}",
		MeanLabel:   "tip amount",
		Subjects:    []string{"a server"},
		Compatible:  question.AllVariations(),
		Phrases: bank.Phrases{
			Standard: "{name} works as {role}.",
		},
	}
}

func frostContext() *bank.Context {
	return &bank.Context{
		ID:            core.ContextID("winter-lows"),
		Name:          "Winter Low Temperatures",
		Category:      "Science",
		Unit:          bank.Unit{Symbol: "°C", Position: bank.UnitSuffix},
		ValueMin:      -15,
		ValueMax:      12,
		Decimals:      1,
		AllowNegative: true,
		ItemLabel:     "readings",
		PeriodLabel:   "nights",
		Compatible:    []question.Variation{question.VariationCalculate},
	}
}

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.New("test", []bank.Context{*tipsContext(), *frostContext()}, nil, []string{"Ms. Lee"})
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	return b
}

// TestPickContext_ExplicitID verifies the requested context wins when it
// supports the variation
func TestPickContext_ExplicitID(t *testing.T) {
	e := New(testBank(t))
	rng := rand.New(rand.NewSource(1))

	c, err := e.PickContext(rng, question.VariationCalculate, core.ContextID("server-tips"))
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != core.ContextID("server-tips") {
		t.Errorf("picked %s", c.ID)
	}
}

// TestPickContext_IncompatibleExplicit verifies an unsupported pairing is
// rejected instead of silently substituted
func TestPickContext_IncompatibleExplicit(t *testing.T) {
	e := New(testBank(t))
	rng := rand.New(rand.NewSource(1))

	_, err := e.PickContext(rng, question.VariationCompare, core.ContextID("winter-lows"))
	if err == nil {
		t.Fatal("expected incompatibility error")
	}
	if !errors.Is(err, core.ErrIncompatibleContext) {
		t.Errorf("expected ErrIncompatibleContext, got %v", err)
	}
}

// TestPickContext_UnknownID verifies a missing context reports not found
func TestPickContext_UnknownID(t *testing.T) {
	e := New(testBank(t))
	rng := rand.New(rand.NewSource(1))

	_, err := e.PickContext(rng, question.VariationCalculate, core.ContextID("nope"))
	if !core.IsNotFoundError(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

// TestPickContext_RandomDraw verifies an empty ID lands on a compatible
// context and is stable under a fixed seed
func TestPickContext_RandomDraw(t *testing.T) {
	e := New(testBank(t))

	c1, err := e.PickContext(rand.New(rand.NewSource(7)), question.VariationCompare, "")
	if err != nil {
		t.Fatal(err)
	}
	if !c1.Supports(question.VariationCompare) {
		t.Errorf("picked incompatible context %s", c1.ID)
	}

	c2, err := e.PickContext(rand.New(rand.NewSource(7)), question.VariationCompare, "")
	if err != nil {
		t.Fatal(err)
	}
	if c1.ID != c2.ID {
		t.Errorf("same seed picked %s then %s", c1.ID, c2.ID)
	}
}

// TestPickContext_NoCompatible verifies the dedicated error when nothing
// can host the variation
func TestPickContext_NoCompatible(t *testing.T) {
	only := *frostContext()
	b, err := bank.New("test", []bank.Context{only}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	e := New(b)

	_, err = e.PickContext(rand.New(rand.NewSource(1)), question.VariationCombineGroups, "")
	if !errors.Is(err, core.ErrNoCompatible) {
		t.Errorf("expected ErrNoCompatible, got %v", err)
	}
}
