package textview

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		verbs    string
		args     []any
		expected string
	}{
		{"string and int", "%s=%d", []any{"x", 3}, "x=3"},
		{"view arg unwrapped", "%s!", []any{FromString("hi")}, "hi!"},
		{"unit slice arg", "%s", []any{[]Unit{'a', 'b'}}, "ab"},
		{"unit arg as number", "%d", []any{Unit('a')}, "97"},
		{"padding", "[%5s]", []any{"ab"}, "[   ab]"},
		{"no verbs", "plain", nil, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.verbs).Format(tt.args...)
			if got.String() != tt.expected {
				t.Errorf("got %q, want %q", got.String(), tt.expected)
			}
		})
	}
}

func TestFormatLocale(t *testing.T) {
	v := FromString("%d")

	en := v.FormatLocale(language.English, 1234567)
	if en.String() != "1,234,567" {
		t.Errorf("English grouping = %q, want %q", en.String(), "1,234,567")
	}

	de := v.FormatLocale(language.German, 1234567)
	if de.String() != "1.234.567" {
		t.Errorf("German grouping = %q, want %q", de.String(), "1.234.567")
	}
}

func TestFormatLocaleUnwrapsView(t *testing.T) {
	got := FromString("%s/%s").FormatLocale(language.English, FromString("a"), FromString("b"))
	if got.String() != "a/b" {
		t.Errorf("got %q, want %q", got.String(), "a/b")
	}
}
