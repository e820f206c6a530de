package parse

import "testing"

func TestIntOrDefault(t *testing.T) {
	tests := []struct {
		input string
		def   int
		want  int
	}{
		{"600", 1, 600},
		{"", 7, 7},
		{"seven", 7, 7},
		{"-3", 7, -3},
	}

	for _, tt := range tests {
		if got := IntOrDefault(tt.input, tt.def); got != tt.want {
			t.Errorf("IntOrDefault(%q, %d) = %d, want %d", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestFloatOrDefault(t *testing.T) {
	if got := FloatOrDefault("1.5", 0); got != 1.5 {
		t.Errorf("FloatOrDefault(\"1.5\") = %v, want 1.5", got)
	}
	if got := FloatOrDefault("x", 2); got != 2 {
		t.Errorf("FloatOrDefault(\"x\") = %v, want 2", got)
	}
}

func TestBoolOrDefault(t *testing.T) {
	if !BoolOrDefault("true", false) {
		t.Error("BoolOrDefault(\"true\") should be true")
	}
	if BoolOrDefault("0", true) {
		t.Error("BoolOrDefault(\"0\") should be false")
	}
	if !BoolOrDefault("", true) {
		t.Error("BoolOrDefault(\"\") should return the default")
	}
}
