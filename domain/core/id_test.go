package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	// Generate many IDs
	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseContextID tests context ID parsing
func TestParseContextID(t *testing.T) {
	tests := []struct {
		input    string
		expected ContextID
		hasError bool
	}{
		{"daily_tips", ContextID("daily_tips"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseContextID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestParseVariationID tests variation ID parsing and normalization
func TestParseVariationID(t *testing.T) {
	tests := []struct {
		input    string
		expected VariationID
		hasError bool
	}{
		{"calculate", VariationID("calculate"), false},
		{"  Missing_Value ", VariationID("missing_value"), false},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseVariationID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestComputeBankHashOrderIndependence tests fingerprint stability
func TestComputeBankHashOrderIndependence(t *testing.T) {
	a := map[string][]string{
		"daily_tips":  {"calculate", "missing_value"},
		"heart_rate":  {"calculate"},
		"song_length": {"compare", "calculate"},
	}
	b := map[string][]string{
		"song_length": {"calculate", "compare"},
		"heart_rate":  {"calculate"},
		"daily_tips":  {"missing_value", "calculate"},
	}

	if ComputeBankHash(a) != ComputeBankHash(b) {
		t.Error("Expected identical fingerprints for same bank in different order")
	}

	c := map[string][]string{
		"daily_tips": {"calculate"},
	}
	if ComputeBankHash(a) == ComputeBankHash(c) {
		t.Error("Expected different fingerprints for different banks")
	}
}
