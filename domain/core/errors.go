package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound          = errors.New("resource not found")
	ErrContextNotFound   = fmt.Errorf("%w: context", ErrNotFound)
	ErrQuestionNotFound  = fmt.Errorf("%w: question", ErrNotFound)
	ErrWorksheetNotFound = fmt.Errorf("%w: worksheet", ErrNotFound)
	ErrSkillNotFound     = fmt.Errorf("%w: skill", ErrNotFound)

	// Validation errors
	ErrBankInvalid         = errors.New("context bank failed validation")
	ErrEmptyBank           = errors.New("context bank has no contexts")
	ErrVariationUnknown    = errors.New("unknown variation")
	ErrLevelUnknown        = errors.New("unknown narrative level")
	ErrDifficultyRange     = errors.New("difficulty out of range")
	ErrIncompatibleContext = errors.New("context incompatible with variation")

	// Generation errors
	ErrValueInfeasible = errors.New("could not place derived value inside context range")
	ErrNoCompatible    = errors.New("no context compatible with variation")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewBankRowError(sheet string, row int, column string, reason string) error {
	return fmt.Errorf("%w: sheet %s row %d column %s: %s", ErrBankInvalid, sheet, row, column, reason)
}

func NewVariationError(variation string) error {
	return fmt.Errorf("%w: %q", ErrVariationUnknown, variation)
}

func NewIncompatibleError(contextID, variation string) error {
	return fmt.Errorf("%w: context %s does not support %s", ErrIncompatibleContext, contextID, variation)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrBankInvalid) ||
		errors.Is(err, ErrEmptyBank) ||
		errors.Is(err, ErrVariationUnknown) ||
		errors.Is(err, ErrLevelUnknown) ||
		errors.Is(err, ErrDifficultyRange) ||
		errors.Is(err, ErrIncompatibleContext)
}

func IsGenerationError(err error) bool {
	return errors.Is(err, ErrValueInfeasible) ||
		errors.Is(err, ErrNoCompatible)
}
