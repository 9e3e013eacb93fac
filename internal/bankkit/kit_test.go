package bankkit

import (
	"testing"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
)

// TestBuiltinBank_Assembles verifies the compiled-in data indexes cleanly.
func TestBuiltinBank_Assembles(t *testing.T) {
	b, err := BuiltinBank()
	if err != nil {
		t.Fatalf("BuiltinBank: %v", err)
	}
	if b.Len() != 50 {
		t.Errorf("context count = %d, want 50", b.Len())
	}
	if got := len(b.Categories()); got != len(bank.CategoryOrder()) {
		t.Errorf("categories covered = %d, want %d", got, len(bank.CategoryOrder()))
	}
	if b.Source() != SourceName {
		t.Errorf("source = %q, want %q", b.Source(), SourceName)
	}
	if len(b.Skills()) != 6 {
		t.Errorf("skill count = %d, want 6", len(b.Skills()))
	}
}

// TestBuiltinContexts_AllValid verifies every context passes validation and
// carries a unique id in a known category.
func TestBuiltinContexts_AllValid(t *testing.T) {
	seen := make(map[core.ContextID]bool)
	for _, c := range BuiltinContexts() {
		if err := c.Validate(); err != nil {
			t.Errorf("context %s: %v", c.ID, err)
		}
		if seen[c.ID] {
			t.Errorf("duplicate context id %s", c.ID)
		}
		seen[c.ID] = true
		if !bank.KnownCategory(c.Category) {
			t.Errorf("context %s: unknown category %q", c.ID, c.Category)
		}
	}
}

// TestBuiltinContexts_IntensiveQuantitiesSkipTotals verifies that contexts
// measuring temperatures, speeds and similar never offer total-based
// variations, while ordinary contexts offer all of them.
func TestBuiltinContexts_IntensiveQuantitiesSkipTotals(t *testing.T) {
	intensive := []core.ContextID{"winter-lows", "highway-speeds", "stream-ph", "song-tempos"}
	b, err := BuiltinBank()
	if err != nil {
		t.Fatalf("BuiltinBank: %v", err)
	}
	for _, id := range intensive {
		c, err := b.Get(id)
		if err != nil {
			t.Fatalf("Get(%s): %v", id, err)
		}
		if c.Supports(question.VariationFindTotal) || c.Supports(question.VariationMissingCount) {
			t.Errorf("context %s offers a total-based variation", id)
		}
		if !c.Supports(question.VariationCalculate) {
			t.Errorf("context %s does not offer calculate", id)
		}
	}

	tips, err := b.Get("server-tips")
	if err != nil {
		t.Fatalf("Get(server-tips): %v", err)
	}
	for _, v := range question.AllVariations() {
		if !tips.Supports(v) {
			t.Errorf("server-tips missing variation %s", v)
		}
	}
}

// TestBuiltinContexts_NegativeRanges verifies only contexts flagged for
// negatives dip below zero.
func TestBuiltinContexts_NegativeRanges(t *testing.T) {
	for _, c := range BuiltinContexts() {
		if c.ValueMin < 0 && !c.AllowNegative {
			t.Errorf("context %s has negative minimum without the flag", c.ID)
		}
	}
}

// TestBuiltinSkills_ReferenceKnownVariations verifies each skill validates
// and only names variations the generators implement.
func TestBuiltinSkills_ReferenceKnownVariations(t *testing.T) {
	known := make(map[question.Variation]bool)
	for _, v := range question.AllVariations() {
		known[v] = true
	}
	ids := make(map[core.SkillID]bool)
	for _, s := range BuiltinSkills() {
		if err := s.Validate(); err != nil {
			t.Errorf("skill %s: %v", s.ID, err)
		}
		if ids[s.ID] {
			t.Errorf("duplicate skill id %s", s.ID)
		}
		ids[s.ID] = true
		for _, v := range s.Variations {
			if !known[v] {
				t.Errorf("skill %s references unknown variation %s", s.ID, v)
			}
		}
	}
}

// TestBuiltinNames_NoDuplicates verifies the name pool has no repeats.
func TestBuiltinNames_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, n := range BuiltinNames() {
		if n == "" {
			t.Error("empty name in pool")
		}
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
}
