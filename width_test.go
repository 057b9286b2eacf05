package console

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{'a', 1},
		{'1', 1},
		{' ', 1},
		{'中', 2},
		{'日', 2},
		{'한', 2},
		{'Ａ', 2}, // Fullwidth A
		{'\u0301', 0}, // combining acute accent
	}

	for _, tt := range tests {
		got := runeWidth(tt.r)
		if got != tt.expected {
			t.Errorf("runeWidth(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
		{"한글", 4},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestNaiveWidth(t *testing.T) {
	SetUnicodeWidth(false)
	defer SetUnicodeWidth(true)

	if UnicodeWidth() {
		t.Fatal("UnicodeWidth() = true after SetUnicodeWidth(false)")
	}
	if got := StringWidth("中文"); got != 2 {
		t.Errorf("StringWidth(%q) = %d, want 2", "中文", got)
	}
	if got := runeWidth('中'); got != 1 {
		t.Errorf("runeWidth(%q) = %d, want 1", '中', got)
	}
	if got, want := TruncateString("中文", 1, ""), "中"; got != want {
		t.Errorf("TruncateString(%q, 1) = %q, want %q", "中文", got, want)
	}
}
