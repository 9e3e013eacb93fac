package excel

import (
	"strconv"
	"strings"

	"questgen/domain/core"
)

// RawRowData represents a row of raw sheet data as string key-value pairs
type RawRowData map[string]string

// SheetData represents one fully read sheet. Lines holds the original
// 1-based file row for each data row so validation errors can point at the
// exact cell even when blank rows were skipped.
type SheetData struct {
	Sheet   string
	Headers []string
	Rows    []RawRowData
	Lines   []int
}

// Len returns the number of data rows
func (s *SheetData) Len() int { return len(s.Rows) }

// Line returns the original file row of data row i
func (s *SheetData) Line(i int) int {
	if i < len(s.Lines) {
		return s.Lines[i]
	}
	return i + 2
}

// HasColumn reports whether the header row names the column
func (s *SheetData) HasColumn(col string) bool {
	for _, h := range s.Headers {
		if h == col {
			return true
		}
	}
	return false
}

// Get returns the trimmed cell value, empty when missing
func (s *SheetData) Get(i int, col string) string {
	return s.Rows[i][col]
}

// Require returns the cell value and fails on an empty cell
func (s *SheetData) Require(i int, col string) (string, error) {
	v := s.Rows[i][col]
	if v == "" {
		return "", core.NewBankRowError(s.Sheet, s.Line(i), col, "required cell is empty")
	}
	return v, nil
}

// Float parses a required numeric cell
func (s *SheetData) Float(i int, col string) (float64, error) {
	raw, err := s.Require(i, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, core.NewBankRowError(s.Sheet, s.Line(i), col, "not a number: "+raw)
	}
	return v, nil
}

// Int parses an optional integer cell, returning def when empty
func (s *SheetData) Int(i int, col string, def int) (int, error) {
	raw := s.Rows[i][col]
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, core.NewBankRowError(s.Sheet, s.Line(i), col, "not an integer: "+raw)
	}
	return v, nil
}

// Bool parses an optional boolean cell, returning false when empty
func (s *SheetData) Bool(i int, col string) (bool, error) {
	raw := s.Rows[i][col]
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return false, core.NewBankRowError(s.Sheet, s.Line(i), col, "not a boolean: "+raw)
	}
	return v, nil
}

// List splits an optional pipe-separated cell into trimmed tokens
func (s *SheetData) List(i int, col string) []string {
	raw := s.Rows[i][col]
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
