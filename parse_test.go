package textview

import (
	"errors"
	"testing"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"positive", "42", 42, false},
		{"negative", "-7", -7, false},
		{"explicit plus", "+7", 7, false},
		{"zero", "0", 0, false},
		{"empty", "", 0, true},
		{"trailing junk", "42x", 0, true},
		{"whitespace", " 42", 0, true},
		{"float", "4.2", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.input).ToInt()
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("error = %v, want *ParseError", err)
				}
				if pe.Input != tt.input {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToInt failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	got, err := FromString("9223372036854775807").ToInt64()
	if err != nil {
		t.Fatalf("ToInt64 failed: %v", err)
	}
	if got != 9223372036854775807 {
		t.Errorf("got %d", got)
	}

	if _, err := FromString("9223372036854775808").ToInt64(); err == nil {
		t.Error("overflow should fail")
	}
}

func TestToFloat(t *testing.T) {
	got64, err := FromString("3.5").ToFloat64()
	if err != nil {
		t.Fatalf("ToFloat64 failed: %v", err)
	}
	if got64 != 3.5 {
		t.Errorf("got %v, want 3.5", got64)
	}

	got32, err := FromString("1e3").ToFloat32()
	if err != nil {
		t.Fatalf("ToFloat32 failed: %v", err)
	}
	if got32 != 1000 {
		t.Errorf("got %v, want 1000", got32)
	}

	if _, err := FromString("not a number").ToFloat64(); err == nil {
		t.Error("malformed float should fail")
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{"lower true", "true", true, false},
		{"upper true", "TRUE", true, false},
		{"mixed false", "False", false, false},
		{"lower false", "false", false, false},
		{"not boolean", "nope", false, true},
		{"numeric", "1", false, true},
		{"empty", "", false, true},
		{"padded", " true", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.input).ToBool()
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("error = %v, want *ParseError", err)
				}
				if pe.Input != tt.input {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToBool failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
