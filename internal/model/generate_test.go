package model

import "testing"

func TestStrengthLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Weak"},
		{39, "Weak"},
		{40, "Medium"},
		{59, "Medium"},
		{60, "Strong"},
		{79, "Strong"},
		{80, "Very Strong"},
		{100, "Very Strong"},
	}

	for _, tt := range tests {
		if got := StrengthLabel(tt.score); got != tt.want {
			t.Errorf("StrengthLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
