package engine

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
)

// ValuePlan fixes the shape of a data set before values are drawn
type ValuePlan struct {
	Count        int
	DataDecimals int
	MeanDecimals int
}

// maxDrawAttempts bounds the redraw loop when clean-mean adjustment cannot
// land inside the context range
const maxDrawAttempts = 25

// PlanValues derives the data set shape from context and difficulty. Easy
// questions use few whole numbers with a whole mean; harder ones grow the
// set and let the context's full decimal precision through.
func PlanValues(c *bank.Context, d question.Difficulty, rng *rand.Rand) ValuePlan {
	var count int
	switch d {
	case 1:
		count = 4 + rng.Intn(2)
	case 2:
		count = 5 + rng.Intn(2)
	case 3:
		count = 6 + rng.Intn(2)
	case 4:
		count = 7 + rng.Intn(2)
	default:
		count = 8 + rng.Intn(2)
	}

	dataDecimals := 0
	switch {
	case d <= 2:
		dataDecimals = 0
	case d == 3:
		dataDecimals = min(1, c.Decimals)
	default:
		dataDecimals = c.Decimals
	}

	meanDecimals := dataDecimals
	if d >= 3 {
		meanDecimals = max(1, c.Decimals)
	}

	return ValuePlan{Count: count, DataDecimals: dataDecimals, MeanDecimals: meanDecimals}
}

// EffectiveRange narrows the context range for easy questions: negative
// values only appear from difficulty 3 when the range also has a positive
// side to fall back on.
func EffectiveRange(c *bank.Context, d question.Difficulty) (lo, hi float64) {
	lo, hi = c.ValueMin, c.ValueMax
	if lo < 0 && hi > 0 && d < 3 {
		lo = 0
	}
	return lo, hi
}

func sigmaDivisor(d question.Difficulty) float64 {
	switch d {
	case 1:
		return 6
	case 2:
		return 5
	case 3:
		return 4
	case 4:
		return 3.5
	default:
		return 3
	}
}

// DrawValues samples one data set from the context range. Values cluster
// around the range midpoint through a normal quantile so the data reads
// naturally instead of uniformly scattered.
func DrawValues(c *bank.Context, d question.Difficulty, plan ValuePlan, rng *rand.Rand) []float64 {
	lo, hi := EffectiveRange(c, d)
	norm := distuv.Normal{Mu: (lo + hi) / 2, Sigma: (hi - lo) / sigmaDivisor(d)}

	out := make([]float64, plan.Count)
	for i := range out {
		u := 0.02 + 0.96*rng.Float64()
		v := norm.Quantile(u)
		v = math.Min(math.Max(v, lo), hi)
		out[i] = Round(v, plan.DataDecimals)
	}
	return out
}

// AdjustForCleanMean nudges one value so the mean terminates exactly at the
// plan's mean precision, keeping the written division step honest. Works in
// integer ticks of the data precision. Returns false when no value can be
// nudged without leaving the range.
func AdjustForCleanMean(values []float64, plan ValuePlan, lo, hi float64) ([]float64, bool) {
	n := int64(len(values))
	if n == 0 {
		return values, false
	}

	dataPow := math.Pow(10, float64(plan.DataDecimals))
	k := plan.MeanDecimals - plan.DataDecimals
	if k < 0 {
		k = 0
	}
	mult := int64(math.Round(math.Pow(10, float64(k))))

	ticks := make([]int64, n)
	var sum int64
	for i, v := range values {
		ticks[i] = int64(math.Round(v * dataPow))
		sum += ticks[i]
	}

	loTick := int64(math.Ceil(lo*dataPow - 1e-9))
	hiTick := int64(math.Floor(hi*dataPow + 1e-9))

	// Try the last value first, then walk backwards
	for j := n - 1; j >= 0; j-- {
		for a := int64(0); a <= n; a++ {
			for _, delta := range []int64{a, -a} {
				cand := ticks[j] + delta
				if cand < loTick || cand > hiTick {
					continue
				}
				if ((sum+delta)*mult)%n != 0 {
					continue
				}
				out := make([]float64, n)
				for i, t := range ticks {
					out[i] = float64(t) / dataPow
				}
				out[j] = float64(cand) / dataPow
				return out, true
			}
		}
	}
	return values, false
}

// GenerateCleanSet draws a data set whose mean divides out exactly at the
// plan's precision. Bounded retries guard against narrow ranges.
func GenerateCleanSet(c *bank.Context, d question.Difficulty, rng *rand.Rand) ([]float64, ValuePlan, error) {
	plan := PlanValues(c, d, rng)
	lo, hi := EffectiveRange(c, d)

	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		values := DrawValues(c, d, plan, rng)
		if adjusted, ok := AdjustForCleanMean(values, plan, lo, hi); ok {
			return adjusted, plan, nil
		}
	}
	return nil, plan, core.ErrValueInfeasible
}

// DrawSingle samples one extra value from the context range
func DrawSingle(c *bank.Context, d question.Difficulty, decimals int, rng *rand.Rand) float64 {
	lo, hi := EffectiveRange(c, d)
	v := lo + rng.Float64()*(hi-lo)
	return Round(v, decimals)
}
