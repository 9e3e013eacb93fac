package question

import (
	"strings"

	"questgen/domain/core"
)

// Level controls how much narrative dressing a question text carries
type Level string

const (
	// LevelMinimal is a single bare sentence around the numbers
	LevelMinimal Level = "minimal"
	// LevelStandard adds a short scenario with an actor
	LevelStandard Level = "standard"
	// LevelRich adds backstory and a reason the answer matters
	LevelRich Level = "rich"
)

// AllLevels returns the levels in ascending verbosity order
func AllLevels() []Level {
	return []Level{LevelMinimal, LevelStandard, LevelRich}
}

// ParseLevel normalizes and validates a level token
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", core.ErrLevelUnknown
	}
	return l, nil
}

// Valid reports whether the level is known
func (l Level) Valid() bool {
	switch l {
	case LevelMinimal, LevelStandard, LevelRich:
		return true
	}
	return false
}

// String returns the wire token
func (l Level) String() string { return string(l) }

// DisplayName returns the slider label shown in the UI
func (l Level) DisplayName() string {
	switch l {
	case LevelMinimal:
		return "Minimal"
	case LevelStandard:
		return "Standard"
	case LevelRich:
		return "Rich"
	}
	return string(l)
}

// Difficulty scales a question from 1 (routine) to 5 (demanding). It drives
// data set size, decimal places, negative values and mark allocation.
type Difficulty int

// MinDifficulty and MaxDifficulty bound the slider; DefaultDifficulty is
// where it starts
const (
	MinDifficulty     Difficulty = 1
	MaxDifficulty     Difficulty = 5
	DefaultDifficulty Difficulty = 2
)

// ParseDifficulty validates a difficulty value
func ParseDifficulty(d int) (Difficulty, error) {
	diff := Difficulty(d)
	if !diff.Valid() {
		return 0, core.ErrDifficultyRange
	}
	return diff, nil
}

// Valid reports whether the difficulty is inside the 1..5 band
func (d Difficulty) Valid() bool {
	return d >= MinDifficulty && d <= MaxDifficulty
}

// Label maps the numeric band onto the printed difficulty tag
func (d Difficulty) Label() string {
	switch {
	case d <= 2:
		return "Easy"
	case d == 3:
		return "Medium"
	default:
		return "Hard"
	}
}

// Int returns the raw slider value
func (d Difficulty) Int() int { return int(d) }
