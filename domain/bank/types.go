package bank

import (
	"fmt"
	"strings"

	"questgen/domain/core"
	"questgen/domain/question"
)

// UnitPosition says which side of a number the unit symbol attaches to
type UnitPosition string

const (
	UnitPrefix UnitPosition = "prefix" // $50.00
	UnitSuffix UnitPosition = "suffix" // 188.2 MB
)

// Unit describes how a context's values carry their measurement unit. A
// blank symbol means the values are plain counts.
type Unit struct {
	Symbol   string       `json:"symbol"`
	Position UnitPosition `json:"position"`
	Spaced   bool         `json:"spaced"`
}

// Phrases holds the per-level narrative fragments of one context. Standard
// and rich wrap the minimal sentence with scenario and backstory text.
type Phrases struct {
	Minimal  string `json:"minimal"`
	Standard string `json:"standard"`
	Rich     string `json:"rich"`
}

// ForLevel returns the fragment for a narrative level
func (p Phrases) ForLevel(l question.Level) string {
	switch l {
	case question.LevelMinimal:
		return p.Minimal
	case question.LevelStandard:
		return p.Standard
	case question.LevelRich:
		return p.Rich
	}
	return p.Standard
}

/// Context is one realistic setting a question can be dressed in: a value
// range, a unit, narrative labels and the variations it supports.
type Context struct {
	ID            core.ContextID       `json:"id"`
	Name          string               `json:"name"`
	Category      string               `json:"category"`
	Description   string               `json:"description"`
	Unit          Unit                 `json:"unit"`
	ValueMin      float64              `json:"value_min"`
	ValueMax      float64              `json:"value_max"`
	Decimals      int                  `json:"decimals"`
	AllowNegative bool                 `json:"allow_negative"`
	ItemLabel     string               `json:"item_label"`   // what one value is: "tips", "readings"
	PeriodLabel   string               `json:"period_label"` // what indexes the series: "days", "songs"
	DataLabel     string               `json:"data_label"`   // introduces the list: "Tips over {count} {period}"
	MeanLabel     string               `json:"mean_label"`   // noun after "mean": "daily tip amount"
	PairLabels    []string             `json:"pair_labels"`  // two-set labels: "Week 1", "Week 2"
	Subjects      []string             `json:"subjects"`     // narrative actor roles
	Compatible    []question.Variation `json:"compatible"`
	Phrases       Phrases              `json:"phrases"`
}

// AskNoun returns the noun phrase used after "mean" in question text
func (c *Context) AskNoun() string {
	if c.MeanLabel != "" {
		return c.MeanLabel
	}
	return c.ItemLabel
}

// ListLabel returns the phrase introducing the data run
func (c *Context) ListLabel() string {
	if c.DataLabel != "" {
		return c.DataLabel
	}
	return "Recorded " + c.ItemLabel
}

// PairLabel returns the idx-th two-set label with a generic fallback
func (c *Context) PairLabel(idx int) string {
	if idx < len(c.PairLabels) {
		return c.PairLabels[idx]
	}
	if idx == 0 {
		return "Group A"
	}
	return "Group B"
}

// Span returns the width of the value range
func (c *Context) Span() float64 {
	return c.ValueMax - c.ValueMin
}

// Supports reports whether the context can host the variation
func (c *Context) Supports(v question.Variation) bool {
	for _, cv := range c.Compatible {
		if cv == v {
			return true
		}
	}
	return false
}

// Subject returns the idx-th narrative actor role, wrapping around
func (c *Context) Subject(idx int) string {
	if len(c.Subjects) == 0 {
		return "a student"
	}
	return c.Subjects[idx%len(c.Subjects)]
}

// Validate checks the semantic invariants of a single context. The loader
// wraps the returned error with the sheet and row it came from.
func (c *Context) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return fmt.Errorf("context id is empty")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("context name is empty")
	}
	if !KnownCategory(c.Category) {
		return fmt.Errorf("unknown category %q", c.Category)
	}
	if c.ValueMin >= c.ValueMax {
		return fmt.Errorf("value_min %v must be below value_max %v", c.ValueMin, c.ValueMax)
	}
	if c.ValueMin < 0 && !c.AllowNegative {
		return fmt.Errorf("value_min %v is negative but allow_negative is false", c.ValueMin)
	}
	if c.Decimals < 0 || c.Decimals > 2 {
		return fmt.Errorf("decimals %d outside 0..2", c.Decimals)
	}
	switch c.Unit.Position {
	case UnitPrefix, UnitSuffix:
	case "":
		if c.Unit.Symbol != "" {
			return fmt.Errorf("unit %q has no position", c.Unit.Symbol)
		}
	default:
		return fmt.Errorf("unknown unit position %q", c.Unit.Position)
	}
	if strings.TrimSpace(c.ItemLabel) == "" {
		return fmt.Errorf("item_label is empty")
	}
	if len(c.Compatible) == 0 {
		return fmt.Errorf("no compatible variations")
	}
	for _, v := range c.Compatible {
		if !v.Valid() {
			return fmt.Errorf("unknown variation %q", v)
		}
	}
	return nil
}

// Skill is one worksheet section topic from the master source workbook
type Skill struct {
	ID          core.SkillID         `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Variations  []question.Variation `json:"variations"`
	Difficulty  question.Difficulty  `json:"difficulty"`
}

// Validate checks the semantic invariants of a skill row
func (s *Skill) Validate() error {
	if strings.TrimSpace(string(s.ID)) == "" {
		return fmt.Errorf("skill id is empty")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name is empty")
	}
	if len(s.Variations) == 0 {
		return fmt.Errorf("no variations")
	}
	for _, v := range s.Variations {
		if !v.Valid() {
			return fmt.Errorf("unknown variation %q", v)
		}
	}
	if !s.Difficulty.Valid() {
		return fmt.Errorf("difficulty %d outside 1..5", s.Difficulty)
	}
	return nil
}

// Categories in canonical display order
var categoryOrder = []string{
	"Physical",
	"Recreation",
	"Health",
	"Transportation",
	"Household",
	"Academic",
	"Environmental",
	"Digital",
	"Earnings",
	"Financial",
	"Workplace",
	"Community",
	"Science",
}

// CategoryOrder returns the canonical category display order
func CategoryOrder() []string {
	return append([]string(nil), categoryOrder...)
}

// KnownCategory reports whether the category is part of the catalogue
func KnownCategory(name string) bool {
	for _, c := range categoryOrder {
		if c == name {
			return true
		}
	}
	return false
}
