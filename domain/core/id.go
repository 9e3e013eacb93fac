package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	QuestionID  ID
	WorksheetID ID
	ContextID   ID
	VariationID ID
	SkillID     ID
)

// String conversions for domain IDs
func (id QuestionID) String() string  { return ID(id).String() }
func (id WorksheetID) String() string { return ID(id).String() }
func (id ContextID) String() string   { return ID(id).String() }
func (id VariationID) String() string { return ID(id).String() }
func (id SkillID) String() string     { return ID(id).String() }

// ParseQuestionID parses a string into QuestionID
func ParseQuestionID(s string) (QuestionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("question ID cannot be empty")
	}
	return QuestionID(s), nil
}

// ParseWorksheetID parses a string into WorksheetID
func ParseWorksheetID(s string) (WorksheetID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("worksheet ID cannot be empty")
	}
	return WorksheetID(s), nil
}

// ParseContextID parses a string into ContextID
func ParseContextID(s string) (ContextID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("context ID cannot be empty")
	}
	return ContextID(s), nil
}

// ParseVariationID parses a string into VariationID
func ParseVariationID(s string) (VariationID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("variation ID cannot be empty")
	}
	return VariationID(strings.ToLower(strings.TrimSpace(s))), nil
}

// ParseSkillID parses a string into SkillID
func ParseSkillID(s string) (SkillID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("skill ID cannot be empty")
	}
	return SkillID(s), nil
}
