package util

import (
	"testing"
)

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  50 98 2  ", "50 98 2"},
		{"strips CRLF", "seeds: 79 14\r", "seeds: 79 14"},
		{"tabs become spaces", "50\t98\t2", "50 98 2"},
		{"removes control chars", "50\x0098 2", "5098 2"},
		{"empty string", "", ""},
		{"no changes needed", "seed-to-soil map:", "seed-to-soil map:"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeLine(tc.input)
			if got != tc.want {
				t.Errorf("SanitizeLine(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeEnvValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips double quotes", `"input.txt"`, "input.txt"},
		{"strips single quotes", `'input.txt'`, "input.txt"},
		{"trims whitespace", "  ranges  ", "ranges"},
		{"strips quotes and trims", `  "both"  `, "both"},
		{"single quote char", `"`, `"`},
		{"empty string", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeEnvValue(tc.input); got != tc.want {
				t.Errorf("SanitizeEnvValue(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
