package excel

import (
	"errors"
	"testing"

	"questgen/domain/core"
)

func sampleSheet() *SheetData {
	return &SheetData{
		Sheet:   "Contexts",
		Headers: []string{"id", "value_min", "pair_labels", "allow_negative", "decimals"},
		Rows: []RawRowData{
			{"id": "a", "value_min": "250,000", "pair_labels": "Week 1 | Week 2", "allow_negative": "TRUE", "decimals": "2"},
			{"id": "b", "value_min": "", "pair_labels": "", "allow_negative": "", "decimals": ""},
		},
		Lines: []int{2, 5},
	}
}

// TestSheetData_Float verifies numeric parsing strips grouping commas and
// reports blank required cells.
func TestSheetData_Float(t *testing.T) {
	s := sampleSheet()

	v, err := s.Float(0, "value_min")
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	if v != 250000 {
		t.Errorf("value = %v, want 250000", v)
	}

	if _, err := s.Float(1, "value_min"); !errors.Is(err, core.ErrBankInvalid) {
		t.Errorf("blank cell error = %v, want ErrBankInvalid", err)
	}
}

// TestSheetData_Line verifies rows keep their original workbook line through
// blank-row skipping.
func TestSheetData_Line(t *testing.T) {
	s := sampleSheet()
	if got := s.Line(1); got != 5 {
		t.Errorf("Line(1) = %d, want 5", got)
	}
	s.Lines = nil
	if got := s.Line(1); got != 3 {
		t.Errorf("Line(1) fallback = %d, want 3", got)
	}
}

// TestSheetData_List verifies pipe-separated cells split and trim.
func TestSheetData_List(t *testing.T) {
	s := sampleSheet()
	got := s.List(0, "pair_labels")
	if len(got) != 2 || got[0] != "Week 1" || got[1] != "Week 2" {
		t.Errorf("List = %v", got)
	}
	if got := s.List(1, "pair_labels"); got != nil {
		t.Errorf("blank list = %v, want nil", got)
	}
}

// TestSheetData_OptionalCells verifies Get, Bool and Int defaults.
func TestSheetData_OptionalCells(t *testing.T) {
	s := sampleSheet()

	if got := s.Get(1, "id"); got != "b" {
		t.Errorf("Get = %q, want b", got)
	}
	if got := s.Get(0, "missing_column"); got != "" {
		t.Errorf("missing column = %q, want empty", got)
	}

	b, err := s.Bool(0, "allow_negative")
	if err != nil || !b {
		t.Errorf("Bool = %v %v, want true", b, err)
	}
	b, err = s.Bool(1, "allow_negative")
	if err != nil || b {
		t.Errorf("blank Bool = %v %v, want false", b, err)
	}

	n, err := s.Int(1, "decimals", 3)
	if err != nil || n != 3 {
		t.Errorf("blank Int = %d %v, want default 3", n, err)
	}
	n, err = s.Int(0, "decimals", 0)
	if err != nil || n != 2 {
		t.Errorf("Int = %d %v, want 2", n, err)
	}
}
