package generators

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/ports"
)

func moneyContext() *bank.Context {
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
		PairLabels:  []string{"Week 1", "Week 2"},
		Subjects:    []string{"a server"},
		Compatible:  question.AllVariations(),
		Phrases: bank.Phrases{
			Standard: "{name} works as {role}.",
			Rich:     "{name} works as {role} and writes down the {item} every one of the {count} {period}.",
		},
	}
}

func temperatureContext() *bank.Context {
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
		DataLabel:     "Lows over {count} {period}",
		MeanLabel:     "overnight low",
		PairLabels:    []string{"First week", "Second week"},
		Subjects:      []string{"a weather watcher"},
		Compatible:    question.AllVariations(),
		Phrases: bank.Phrases{
			Standard: "{name}, {role}, logs the overnight low.",
		},
	}
}

func request(c *bank.Context, d question.Difficulty, seed int64) ports.GenerationRequest {
	return ports.GenerationRequest{
		Context:    c,
		Level:      question.LevelStandard,
		Difficulty: d,
		Seed:       seed,
		Rand:       rand.New(rand.NewSource(seed)),
		Names:      []string{"Ms. Lee", "Mr. Ortiz", "Dana"},
	}
}

// TestAll_CoversEveryVariation verifies the registry maps the full catalogue
func TestAll_CoversEveryVariation(t *testing.T) {
	gens := All()
	if len(gens) != len(question.AllVariations()) {
		t.Fatalf("expected %d generators, got %d", len(question.AllVariations()), len(gens))
	}
	for _, v := range question.AllVariations() {
		g, ok := gens[v]
		if !ok {
			t.Fatalf("no generator registered for %s", v)
		}
		if g.Variation() != v {
			t.Errorf("generator for %s reports %s", v, g.Variation())
		}
	}
}

// TestGenerate_SameSeedSameQuestion verifies full determinism per variation
func TestGenerate_SameSeedSameQuestion(t *testing.T) {
	for _, v := range question.AllVariations() {
		t.Run(v.String(), func(t *testing.T) {
			g := All()[v]

			first, err := g.Generate(context.Background(), request(moneyContext(), 3, 99))
			if err != nil {
				t.Fatalf("first generate: %v", err)
			}
			second, err := g.Generate(context.Background(), request(moneyContext(), 3, 99))
			if err != nil {
				t.Fatalf("second generate: %v", err)
			}

			if first.Text != second.Text {
				t.Errorf("text differs:\n%s\n%s", first.Text, second.Text)
			}
			if first.Answer != second.Answer {
				t.Errorf("answer differs: %q vs %q", first.Answer, second.Answer)
			}
			if len(first.Steps) != len(second.Steps) {
				t.Fatalf("step count differs: %d vs %d", len(first.Steps), len(second.Steps))
			}
			for i := range first.Steps {
				if first.Steps[i] != second.Steps[i] {
					t.Errorf("step %d differs: %q vs %q", i, first.Steps[i], second.Steps[i])
				}
			}
		})
	}
}

// TestGenerate_LevelChangesKeepData verifies a level switch redresses the
// question without touching the drawn numbers
func TestGenerate_LevelChangesKeepData(t *testing.T) {
	g := NewCalculate()

	minimal := request(moneyContext(), 2, 17)
	minimal.Level = question.LevelMinimal
	rich := request(moneyContext(), 2, 17)
	rich.Level = question.LevelRich

	qMin, err := g.Generate(context.Background(), minimal)
	if err != nil {
		t.Fatal(err)
	}
	qRich, err := g.Generate(context.Background(), rich)
	if err != nil {
		t.Fatal(err)
	}

	if qMin.Answer != qRich.Answer {
		t.Errorf("answers diverged across levels: %q vs %q", qMin.Answer, qRich.Answer)
	}
	a, b := qMin.PrimaryData().Values, qRich.PrimaryData().Values
	if len(a) != len(b) {
		t.Fatalf("data length diverged: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("value %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
	if len(qRich.Text) <= len(qMin.Text) {
		t.Errorf("rich text should be longer than minimal: %d vs %d", len(qRich.Text), len(qMin.Text))
	}
}

// TestCalculate_MeanIsExact verifies the printed answer equals the exact
// mean of the printed data across seeds and difficulties
func TestCalculate_MeanIsExact(t *testing.T) {
	g := NewCalculate()
	for d := question.MinDifficulty; d <= question.MaxDifficulty; d++ {
		for seed := int64(1); seed <= 20; seed++ {
			q, err := g.Generate(context.Background(), request(moneyContext(), d, seed))
			if err != nil {
				t.Fatalf("d=%d seed=%d: %v", d, seed, err)
			}
			data := q.PrimaryData()
			mean := data.Sum() / float64(data.Len())
			if math.Abs(mean-q.AnswerValue) > 1e-9 {
				t.Errorf("d=%d seed=%d: answer %v but data mean %v", d, seed, q.AnswerValue, mean)
			}
			if len(q.Steps) != 3 {
				t.Fatalf("d=%d seed=%d: expected 3 steps, got %d", d, seed, len(q.Steps))
			}
			if !strings.Contains(q.Steps[2], "÷") {
				t.Errorf("division step missing symbol: %q", q.Steps[2])
			}
		}
	}
}

// TestCalculate_StepTexture verifies the worked solution reads as the
// add, count, divide sequence
func TestCalculate_StepTexture(t *testing.T) {
	q, err := NewCalculate().Generate(context.Background(), request(moneyContext(), 2, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(q.Steps[0], "Add all tips: ") {
		t.Errorf("sum step: %q", q.Steps[0])
	}
	if !strings.HasPrefix(q.Steps[1], "Count the number of tips: ") {
		t.Errorf("count step: %q", q.Steps[1])
	}
	if !strings.HasPrefix(q.Steps[2], "Divide sum by count: ") {
		t.Errorf("divide step: %q", q.Steps[2])
	}
	if !strings.Contains(q.Text, "$") {
		t.Errorf("money context should print dollar values: %q", q.Text)
	}
}

// TestMissingValue_AnswerIsMaskedMember verifies the hidden value is a real
// member and the known values plus the answer reproduce the stated mean
func TestMissingValue_AnswerIsMaskedMember(t *testing.T) {
	g := NewMissingValue()
	for seed := int64(1); seed <= 20; seed++ {
		q, err := g.Generate(context.Background(), request(moneyContext(), 3, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !strings.Contains(q.Text, "?") {
			t.Errorf("seed %d: masked run missing ?: %q", seed, q.Text)
		}
		data := q.PrimaryData()
		member := false
		for _, v := range data.Values {
			if v == q.AnswerValue {
				member = true
			}
		}
		if !member {
			t.Errorf("seed %d: answer %v is not in the data set %v", seed, q.AnswerValue, data.Values)
		}
	}
}

// TestCompare_MeansKeepTheirDistance verifies the two sets stay apart and
// the answer names the winner
func TestCompare_MeansKeepTheirDistance(t *testing.T) {
	g := NewCompare()
	for seed := int64(1); seed <= 20; seed++ {
		q, err := g.Generate(context.Background(), request(moneyContext(), 2, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(q.Data) != 2 {
			t.Fatalf("seed %d: expected 2 data sets, got %d", seed, len(q.Data))
		}
		meanA := q.Data[0].Sum() / float64(q.Data[0].Len())
		meanB := q.Data[1].Sum() / float64(q.Data[1].Len())
		gap := math.Abs(meanA - meanB)
		if gap < 1e-9 {
			t.Errorf("seed %d: means are equal", seed)
		}
		if math.Abs(gap-q.AnswerValue) > 1e-9 {
			t.Errorf("seed %d: answer %v but actual gap %v", seed, q.AnswerValue, gap)
		}
		if !strings.HasPrefix(q.Answer, "Week 1 by ") && !strings.HasPrefix(q.Answer, "Week 2 by ") {
			t.Errorf("seed %d: answer should name the week: %q", seed, q.Answer)
		}
	}
}

// TestMissingCount_DivisionIsWhole verifies total over mean lands on the
// advertised count
func TestMissingCount_DivisionIsWhole(t *testing.T) {
	g := NewMissingCount()
	for seed := int64(1); seed <= 20; seed++ {
		q, err := g.Generate(context.Background(), request(moneyContext(), 2, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		count := q.AnswerValue
		if count != math.Trunc(count) || count < 1 {
			t.Errorf("seed %d: count %v is not a positive whole number", seed, count)
		}
		if !strings.HasSuffix(q.Answer, " tips") {
			t.Errorf("seed %d: answer should carry the item label: %q", seed, q.Answer)
		}
	}
}

// TestNewValue_MeanCoversAllValues verifies the answer is the mean over the
// original run plus the newcomer
func TestNewValue_MeanCoversAllValues(t *testing.T) {
	g := NewNewValue()
	for seed := int64(1); seed <= 20; seed++ {
		q, err := g.Generate(context.Background(), request(moneyContext(), 3, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(q.Data) != 2 || q.Data[1].Len() != 1 {
			t.Fatalf("seed %d: expected base set plus single new value", seed)
		}
		total := q.Data[0].Sum() + q.Data[1].Sum()
		n := q.Data[0].Len() + 1
		if math.Abs(total/float64(n)-q.AnswerValue) > 1e-9 {
			t.Errorf("seed %d: answer %v but combined mean %v", seed, q.AnswerValue, total/float64(n))
		}
	}
}

// TestTargetValue_NeededValueStaysInRange verifies the needed value always
// exists inside the context range and the target is stated with its unit
func TestTargetValue_NeededValueStaysInRange(t *testing.T) {
	g := NewTargetValue()
	for seed := int64(1); seed <= 20; seed++ {
		q, err := g.Generate(context.Background(), request(moneyContext(), 3, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !strings.Contains(q.Text, "target mean") {
			t.Errorf("seed %d: text should state the target: %q", seed, q.Text)
		}
		if !strings.Contains(q.Text, "$") {
			t.Errorf("seed %d: target should render with its unit: %q", seed, q.Text)
		}
		if q.AnswerValue < 20-1e-9 || q.AnswerValue > 90+1e-9 {
			t.Errorf("seed %d: needed value %v escapes the context range", seed, q.AnswerValue)
		}
	}
}

// TestCombineGroups_WeightedMeanDividesCleanly verifies the combined total
// divides by the joint count without remainder at the printed precision
func TestCombineGroups_WeightedMeanDividesCleanly(t *testing.T) {
	g := NewCombineGroups()
	for d := question.MinDifficulty; d <= question.MaxDifficulty; d++ {
		for seed := int64(1); seed <= 10; seed++ {
			q, err := g.Generate(context.Background(), request(moneyContext(), d, seed))
			if err != nil {
				t.Fatalf("d=%d seed=%d: %v", d, seed, err)
			}
			if len(q.Data) != 2 {
				t.Fatalf("d=%d seed=%d: expected 2 group means", d, seed)
			}
			n1, n2 := groupSizes(d)
			m1 := q.Data[0].Values[0]
			m2 := q.Data[1].Values[0]
			combined := (m1*float64(n1) + m2*float64(n2)) / float64(n1+n2)
			if math.Abs(combined-q.AnswerValue) > 1e-9 {
				t.Errorf("d=%d seed=%d: answer %v but weighted mean %v", d, seed, q.AnswerValue, combined)
			}
			if len(q.Steps) != 4 {
				t.Errorf("d=%d seed=%d: expected 4 steps, got %d", d, seed, len(q.Steps))
			}
		}
	}
}

// TestGenerate_NegativeValuesParenthesized verifies negative operands are
// wrapped in the written-out sum for a below-zero context
func TestGenerate_NegativeValuesParenthesized(t *testing.T) {
	g := NewCalculate()
	found := false
	for seed := int64(1); seed <= 60 && !found; seed++ {
		q, err := g.Generate(context.Background(), request(temperatureContext(), 4, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, v := range q.PrimaryData().Values {
			if v < 0 {
				found = true
				if !strings.Contains(q.Steps[0], "(-") {
					t.Errorf("seed %d: negative operand not parenthesized: %q", seed, q.Steps[0])
				}
			}
		}
	}
	if !found {
		t.Skip("no negative draw in the seed window")
	}
}

// TestMarksFor_ScalesWithDifficulty verifies the base loads and the bonus
func TestMarksFor_ScalesWithDifficulty(t *testing.T) {
	tests := []struct {
		variation question.Variation
		d         question.Difficulty
		want      int
	}{
		{question.VariationCalculate, 1, 2},
		{question.VariationCalculate, 3, 3},
		{question.VariationCalculate, 5, 4},
		{question.VariationMissingValue, 2, 3},
		{question.VariationCompare, 1, 4},
		{question.VariationCombineGroups, 5, 6},
		{question.VariationFindTotal, 4, 3},
	}
	for _, tt := range tests {
		if got := marksFor(tt.variation, tt.d); got != tt.want {
			t.Errorf("marksFor(%s, %d) = %d, want %d", tt.variation, tt.d, got, tt.want)
		}
	}
}
