package codeunit

import "testing"

func TestClassification(t *testing.T) {
	tests := []struct {
		name string
		u    uint16
		surr bool
		high bool
		low  bool
	}{
		{"ascii", 'a', false, false, false},
		{"bmp", 0x4E16, false, false, false},
		{"high min", 0xD800, true, true, false},
		{"high max", 0xDBFF, true, true, false},
		{"low min", 0xDC00, true, false, true},
		{"low max", 0xDFFF, true, false, true},
		{"past range", 0xE000, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSurrogate(tt.u); got != tt.surr {
				t.Errorf("IsSurrogate(%#x) = %v, want %v", tt.u, got, tt.surr)
			}
			if got := IsHighSurrogate(tt.u); got != tt.high {
				t.Errorf("IsHighSurrogate(%#x) = %v, want %v", tt.u, got, tt.high)
			}
			if got := IsLowSurrogate(tt.u); got != tt.low {
				t.Errorf("IsLowSurrogate(%#x) = %v, want %v", tt.u, got, tt.low)
			}
		})
	}
}

func TestIsBare(t *testing.T) {
	// 0xD83D 0xDE00 is a valid pair (U+1F600).
	tests := []struct {
		name  string
		units []uint16
		i     int
		want  bool
	}{
		{"valid pair high", []uint16{0xD83D, 0xDE00}, 0, false},
		{"valid pair low", []uint16{0xD83D, 0xDE00}, 1, false},
		{"lone high at end", []uint16{'a', 0xD83D}, 1, true},
		{"lone high before bmp", []uint16{0xD83D, 'a'}, 0, true},
		{"lone low at start", []uint16{0xDE00, 'a'}, 0, true},
		{"lone low after bmp", []uint16{'a', 0xDE00}, 1, true},
		{"high high", []uint16{0xD83D, 0xD83D}, 0, true},
		{"non surrogate", []uint16{'a'}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBare(tt.units, tt.i); got != tt.want {
				t.Errorf("IsBare(%v, %d) = %v, want %v", tt.units, tt.i, got, tt.want)
			}
		})
	}
}

func TestHasBare(t *testing.T) {
	if HasBare([]uint16{'a', 0xD83D, 0xDE00, 'b'}) {
		t.Error("valid pair reported as bare")
	}
	if !HasBare([]uint16{'a', 0xDE00, 'b'}) {
		t.Error("lone low surrogate not reported")
	}
	if HasBare(nil) {
		t.Error("empty slice reported as bare")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []string{"", "hello", "héllo", "世界", "a\U0001F600b"}
	for _, s := range tests {
		if got := Decode(Encode(s)); got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}

func TestEncodeAstral(t *testing.T) {
	units := Encode("\U0001F600")
	if len(units) != 2 {
		t.Fatalf("astral rune should encode to 2 units, got %d", len(units))
	}
	if !IsHighSurrogate(units[0]) || !IsLowSurrogate(units[1]) {
		t.Errorf("expected surrogate pair, got %#x %#x", units[0], units[1])
	}
}
