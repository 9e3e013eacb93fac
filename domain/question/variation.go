package question

import (
	"questgen/domain/core"
)

// Variation identifies one member of the central-tendency question family.
// Every context declares which variations it can dress in a narrative.
type Variation string

const (
	VariationCalculate     Variation = "calculate"
	VariationMissingValue  Variation = "missing_value"
	VariationCompare       Variation = "compare"
	VariationMissingCount  Variation = "missing_count"
	VariationFindTotal     Variation = "find_total"
	VariationNewValue      Variation = "new_value"
	VariationTargetValue   Variation = "target_value"
	VariationCombineGroups Variation = "combine_groups"
)

// AllVariations returns the catalogue in stable display order
func AllVariations() []Variation {
	return []Variation{
		VariationCalculate,
		VariationMissingValue,
		VariationCompare,
		VariationMissingCount,
		VariationFindTotal,
		VariationNewValue,
		VariationTargetValue,
		VariationCombineGroups,
	}
}

// ParseVariation normalizes and validates a variation token
func ParseVariation(s string) (Variation, error) {
	id, err := core.ParseVariationID(s)
	if err != nil {
		return "", core.NewVariationError(s)
	}
	v := Variation(id)
	if !v.Valid() {
		return "", core.NewVariationError(s)
	}
	return v, nil
}

// Valid reports whether the variation is part of the catalogue
func (v Variation) Valid() bool {
	switch v {
	case VariationCalculate, VariationMissingValue, VariationCompare,
		VariationMissingCount, VariationFindTotal, VariationNewValue,
		VariationTargetValue, VariationCombineGroups:
		return true
	}
	return false
}

// String returns the wire token
func (v Variation) String() string { return string(v) }

// DisplayName returns the selector label shown in the UI
func (v Variation) DisplayName() string {
	switch v {
	case VariationCalculate:
		return "Calculate Mean"
	case VariationMissingValue:
		return "Find Missing Value"
	case VariationCompare:
		return "Compare Means"
	case VariationMissingCount:
		return "Find Number of Values"
	case VariationFindTotal:
		return "Find Total"
	case VariationNewValue:
		return "Mean After New Value"
	case VariationTargetValue:
		return "Reach Target Mean"
	case VariationCombineGroups:
		return "Combine Groups"
	}
	return string(v)
}

// Describe returns the one-line caption for selector help text
func (v Variation) Describe() string {
	switch v {
	case VariationCalculate:
		return "Work out the mean of a full data set"
	case VariationMissingValue:
		return "The mean is known, one value is not"
	case VariationCompare:
		return "Two data sets, decide which mean is larger and by how much"
	case VariationMissingCount:
		return "The mean and total are known, count the values"
	case VariationFindTotal:
		return "Recover the total from the mean and the count"
	case VariationNewValue:
		return "Recompute the mean after one more value arrives"
	case VariationTargetValue:
		return "Find the value needed to reach a target mean"
	case VariationCombineGroups:
		return "Weighted mean across two groups combined"
	}
	return string(v)
}

// PairedData reports whether the variation works on two data sets
func (v Variation) PairedData() bool {
	return v == VariationCompare || v == VariationCombineGroups
}
