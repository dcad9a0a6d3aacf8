package textview

import "testing"

func TestGraphemes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"ascii", "ab", []string{"a", "b"}},
		{"combining mark", "éx", []string{"é", "x"}},
		{"emoji", "a\U0001F600b", []string{"a", "\U0001F600", "b"}},
		{"flag sequence", "\U0001F1E9\U0001F1EA", []string{"\U0001F1E9\U0001F1EA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			it := FromString(tt.input).Graphemes()
			for it.Next() {
				got = append(got, it.Text())
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %q, want %q", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("cluster %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"wide cjk", "世界", 4},
		{"emoji", "\U0001F600", 2},
		{"combining mark", "é", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromString(tt.input).Width(); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
