package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  world  ", "hello world"},
		{"one\t\ttwo", "one two"},
		{"", ""},
		{"   ", ""},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := TrimAndNormalize(tt.in); got != tt.want {
			t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeUsername(t *testing.T) {
	if got := NormalizeUsername("  Alice  "); got != "alice" {
		t.Errorf("NormalizeUsername() = %q, want %q", got, "alice")
	}
}

func TestNormalizeTrainID(t *testing.T) {
	if got := NormalizeTrainID(" mude123 "); got != "MUDE123" {
		t.Errorf("NormalizeTrainID() = %q, want %q", got, "MUDE123")
	}
}
