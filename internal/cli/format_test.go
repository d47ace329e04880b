package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{850000, "850,000"},
		{1234567, "1,234,567"},
		{-20000, "-20,000"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(20000); got != "$20,000" {
		t.Errorf("FormatAmount(20000) = %q, want $20,000", got)
	}
	if got := FormatAmount(-3000); got != "-$3,000" {
		t.Errorf("FormatAmount(-3000) = %q, want -$3,000", got)
	}
}

func TestFormatXPDelta(t *testing.T) {
	if got := FormatXPDelta(20); got != "+20 XP" {
		t.Errorf("FormatXPDelta(20) = %q, want +20 XP", got)
	}
	if got := FormatXPDelta(-10); got != "-10 XP" {
		t.Errorf("FormatXPDelta(-10) = %q, want -10 XP", got)
	}
	if got := FormatXPDelta(0); got != "+0 XP" {
		t.Errorf("FormatXPDelta(0) = %q, want +0 XP", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(150.4); got != "150%" {
		t.Errorf("FormatPercent(150.4) = %q, want 150%%", got)
	}
	if got := FormatPercent(0); got != "0%" {
		t.Errorf("FormatPercent(0) = %q, want 0%%", got)
	}
}
