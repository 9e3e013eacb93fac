package engine

import (
	"testing"

	"questgen/domain/bank"
)

var (
	dollars = bank.Unit{Symbol: "$", Position: bank.UnitPrefix}
	degrees = bank.Unit{Symbol: "°C", Position: bank.UnitSuffix}
	percent = bank.Unit{Symbol: "%", Position: bank.UnitSuffix}
	mbytes  = bank.Unit{Symbol: "MB", Position: bank.UnitSuffix, Spaced: true}
	bare    = bank.Unit{}
)

func TestRound(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{3.14159, 2, 3.14},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{1234.5678, 1, 1234.6},
		{-0.004, 2, 0},
		{50, 2, 50},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.decimals); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatNumber_Grouping(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{450000, 0, "450,000"},
		{1234.5, 1, "1,234.5"},
		{999, 0, "999"},
		{0, 2, "0.00"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.decimals); got != tt.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		unit     bank.Unit
		v        float64
		decimals int
		want     string
	}{
		{dollars, 50, 2, "$50.00"},
		{dollars, -10.25, 2, "-$10.25"},
		{dollars, 1450, 0, "$1,450"},
		{degrees, -3.5, 1, "-3.5°C"},
		{percent, 82.6, 1, "82.6%"},
		{mbytes, 188.2, 1, "188.2 MB"},
		{bare, 42, 0, "42"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.unit, tt.v, tt.decimals); got != tt.want {
			t.Errorf("FormatValue(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

// TestFormatSum_UnitPlacement verifies the written-out addition keeps
// prefix symbols on every term, strips suffix symbols to bare numbers and
// parenthesizes negatives
func TestFormatSum_UnitPlacement(t *testing.T) {
	tests := []struct {
		name     string
		unit     bank.Unit
		values   []float64
		decimals int
		want     string
	}{
		{"prefix kept per term", dollars, []float64{45, 52, 48}, 0, "$45 + $52 + $48"},
		{"suffix stripped", percent, []float64{80, 85.5}, 1, "80.0 + 85.5"},
		{"negatives parenthesized", degrees, []float64{-12, -8, 5}, 0, "(-12) + (-8) + 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSum(tt.unit, tt.values, tt.decimals); got != tt.want {
				t.Errorf("FormatSum = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTotal(t *testing.T) {
	if got := FormatTotal(dollars, 250, 0); got != "$250" {
		t.Errorf("prefix total = %q", got)
	}
	if got := FormatTotal(percent, 413, 0); got != "413" {
		t.Errorf("suffix total should stay bare, got %q", got)
	}
}
