package tui

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"3000", 3000},
		{" 20,000 ", 20000},
		{"$850000", 850000},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := validateAmount("3000"); err != nil {
		t.Errorf("validateAmount(3000) = %v, want nil", err)
	}
	if err := validateAmount("0"); err == nil {
		t.Error("validateAmount(0) = nil, want error")
	}
	if err := validateAmount("snack"); err == nil {
		t.Error("validateAmount(snack) = nil, want error")
	}
}

func TestValidateDescription(t *testing.T) {
	if err := validateDescription("hot dogs"); err != nil {
		t.Errorf("validateDescription = %v, want nil", err)
	}
	if err := validateDescription("   "); err == nil {
		t.Error("validateDescription(blank) = nil, want error")
	}
}
