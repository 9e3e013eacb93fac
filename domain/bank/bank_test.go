package bank

import (
	"testing"

	"questgen/domain/core"
	"questgen/domain/question"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContext(id, name, category string, variations ...question.Variation) Context {
	if len(variations) == 0 {
		variations = []question.Variation{question.VariationCalculate}
	}
	return Context{
		ID:          core.ContextID(id),
		Name:        name,
		Category:    category,
		Description: name + " description",
		Unit:        Unit{Symbol: "$", Position: UnitPrefix},
		ValueMin:    10,
		ValueMax:    100,
		Decimals:    2,
		ItemLabel:   "tips",
		PeriodLabel: "days",
		Subjects:    []string{"a waiter"},
		Compatible:  variations,
		Phrases: Phrases{
			Minimal:  "The {item} over {count} {period} were {values}.",
			Standard: "{subject} recorded {item} over {count} {period}: {values}.",
			Rich:     "{subject} has been tracking {item} to plan ahead. Over {count} {period} the records show {values}.",
		},
	}
}

func TestNewRejectsEmptyBank(t *testing.T) {
	_, err := New("builtin", nil, nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyBank)
}

func TestNewRejectsInvalidContext(t *testing.T) {
	bad := validContext("daily_tips", "Daily Tips", "Earnings")
	bad.ValueMin = 100
	bad.ValueMax = 10

	_, err := New("builtin", []Context{bad}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily_tips")
}

func TestNewRejectsDuplicateContextIDs(t *testing.T) {
	a := validContext("daily_tips", "Daily Tips", "Earnings")
	b := validContext("daily_tips", "Other Tips", "Earnings")

	_, err := New("builtin", []Context{a, b}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate context id")
}

func TestCompatibleFiltersOnVariation(t *testing.T) {
	contexts := []Context{
		validContext("daily_tips", "Daily Tips", "Earnings", question.VariationCalculate, question.VariationMissingValue),
		validContext("heart_rate", "Heart Rate", "Health", question.VariationCalculate),
		validContext("song_length", "Song Length", "Recreation", question.VariationCompare),
	}

	b, err := New("builtin", contexts, nil, nil)
	require.NoError(t, err)

	calc := b.Compatible(question.VariationCalculate)
	assert.Len(t, calc, 2)

	missing := b.Compatible(question.VariationMissingValue)
	require.Len(t, missing, 1)
	assert.Equal(t, core.ContextID("daily_tips"), missing[0].ID)

	assert.Empty(t, b.Compatible(question.VariationCombineGroups))
}

func TestGroupedFollowsCategoryOrder(t *testing.T) {
	contexts := []Context{
		validContext("commute", "Commute Time", "Transportation"),
		validContext("daily_tips", "Daily Tips", "Earnings"),
		validContext("heart_rate", "Heart Rate", "Health"),
	}

	b, err := New("builtin", contexts, nil, nil)
	require.NoError(t, err)

	groups := b.Grouped()
	require.Len(t, groups, 3)
	// Canonical order puts Health before Transportation before Earnings
	assert.Equal(t, "Health", groups[0].Name)
	assert.Equal(t, "Transportation", groups[1].Name)
	assert.Equal(t, "Earnings", groups[2].Name)
}

func TestAdvertisedVariationsOnlyListsCovered(t *testing.T) {
	contexts := []Context{
		validContext("daily_tips", "Daily Tips", "Earnings", question.VariationCalculate, question.VariationCompare),
	}

	b, err := New("builtin", contexts, nil, nil)
	require.NoError(t, err)

	advertised := b.AdvertisedVariations()
	assert.Equal(t, []question.Variation{question.VariationCalculate, question.VariationCompare}, advertised)
}

func TestFingerprintStableAcrossLoadOrder(t *testing.T) {
	a := validContext("daily_tips", "Daily Tips", "Earnings")
	b := validContext("heart_rate", "Heart Rate", "Health")

	bank1, err := New("builtin", []Context{a, b}, nil, nil)
	require.NoError(t, err)
	bank2, err := New("builtin", []Context{b, a}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, bank1.Fingerprint(), bank2.Fingerprint())
}

func TestSkillLookup(t *testing.T) {
	contexts := []Context{validContext("daily_tips", "Daily Tips", "Earnings")}
	skills := []Skill{
		{
			ID:         core.SkillID("mean_basics"),
			Name:       "Mean Basics",
			Variations: []question.Variation{question.VariationCalculate},
			Difficulty: 2,
		},
	}

	b, err := New("builtin", contexts, skills, []string{"Sarah", "Marcus"})
	require.NoError(t, err)

	s, err := b.Skill(core.SkillID("mean_basics"))
	require.NoError(t, err)
	assert.Equal(t, "Mean Basics", s.Name)

	_, err = b.Skill(core.SkillID("nope"))
	assert.True(t, core.IsNotFoundError(err))

	summary := b.Summarize()
	assert.Equal(t, 1, summary.Contexts)
	assert.Equal(t, 1, summary.Skills)
	assert.Equal(t, 2, summary.Names)
	assert.Equal(t, 1, summary.Variations[question.VariationCalculate])
}
