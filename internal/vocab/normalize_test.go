package vocab

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Hello World",
			want:  "hello world",
		},
		{
			name:  "strips sentence punctuation",
			input: "What time is it?",
			want:  "what time is it",
		},
		{
			name:  "apostrophes removed without splitting",
			input: "don't",
			want:  "dont",
		},
		{
			name:  "hyphen splits words",
			input: "well-known",
			want:  "well known",
		},
		{
			name:  "collapses whitespace",
			input: "  too   many\t spaces  ",
			want:  "too many spaces",
		},
		{
			name:  "brackets and symbols",
			input: "[hello] (world) #tag $5 a&b",
			want:  "hello world tag 5 a b",
		},
		{
			name:  "inverted spanish punctuation",
			input: "¿Qué hora es? ¡Hola!",
			want:  "qué hora es hola",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "?!...",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
