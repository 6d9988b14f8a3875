package doctext

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows line endings", "a\r\nb", "a\nb"},
		{"bare carriage returns", "a\rb", "a\nb"},
		{"non-breaking spaces", "a b", "a b"},
		{"trailing whitespace", "a  \t\nb", "a\nb"},
		{"collapsed blank lines", "a\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace trimmed", "\n\n a \n\n", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
