package engine

import (
	"math/rand"
	"strconv"
	"strings"
	"unicode"

	"questgen/domain/bank"
	"questgen/domain/question"
)

// RenderScenario fills the context's narrative template for the level.
// Placeholders: {name}, {role}, {item}, {period}, {count}. The RNG draws
// happen in a fixed order so the same seed always casts the same actor.
func RenderScenario(c *bank.Context, level question.Level, count int, names []string, rng *rand.Rand) string {
	name := pickName(names, rng)
	role := c.Subject(0)
	if len(c.Subjects) > 0 {
		role = c.Subject(rng.Intn(len(c.Subjects)))
	}

	tpl := c.Phrases.ForLevel(level)
	if tpl == "" {
		return ""
	}
	return renderTemplate(tpl, c, name, role, count)
}

// DataSentence renders the list introduction plus the formatted run:
// "Tips over 5 days: $45, $52, $48, $50, $55."
func DataSentence(c *bank.Context, values []float64, decimals int) string {
	label := renderTemplate(c.ListLabel(), c, "", "", len(values))
	return CapitalizeFirst(label) + ": " + FormatList(c.Unit, values, decimals) + "."
}

// MaskedDataSentence renders the run with one value hidden behind "?"
func MaskedDataSentence(c *bank.Context, values []float64, decimals int, maskIdx int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if i == maskIdx {
			parts[i] = "?"
			continue
		}
		parts[i] = FormatValue(c.Unit, v, decimals)
	}
	label := renderTemplate(c.ListLabel(), c, "", "", len(values))
	return CapitalizeFirst(label) + ": " + strings.Join(parts, ", ") + "."
}

// LabeledDataSentence renders a pair-set run: "Week 1: $45, $52, $48."
func LabeledDataSentence(c *bank.Context, label string, values []float64, decimals int) string {
	return CapitalizeFirst(label) + ": " + FormatList(c.Unit, values, decimals) + "."
}

// JoinSentences glues non-empty sentences with single spaces
func JoinSentences(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// CapitalizeFirst uppercases the first letter of a sentence fragment
func CapitalizeFirst(s string) string {
	for i, r := range s {
		return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

func renderTemplate(tpl string, c *bank.Context, name, role string, count int) string {
	r := strings.NewReplacer(
		"{name}", name,
		"{role}", role,
		"{item}", c.ItemLabel,
		"{period}", c.PeriodLabel,
		"{count}", strconv.Itoa(count),
	)
	return r.Replace(tpl)
}

func pickName(names []string, rng *rand.Rand) string {
	if len(names) == 0 {
		return "Alex"
	}
	return names[rng.Intn(len(names))]
}
