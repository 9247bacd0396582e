package configfile

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		maxTokens int
		want      []string
	}{
		{"name and value", "fullscreen true", 2, []string{"fullscreen", "true"}},
		{"extra word ignored", "key_a   123  ignored_extra", 2, []string{"key_a", "123"}},
		{"leading whitespace", "  \t key_b 51", 2, []string{"key_b", "51"}},
		{"tabs and carriage return", "key_z\t37\r", 2, []string{"key_z", "37"}},
		{"single word", "fullscreen", 2, []string{"fullscreen"}},
		{"trailing whitespace", "fullscreen   ", 2, []string{"fullscreen"}},
		{"empty", "", 2, []string{}},
		{"only whitespace", " \t\v\f\r ", 2, []string{}},
		{"max one", "a b c", 1, []string{"a"}},
		{"max three", "a b c d", 3, []string{"a", "b", "c"}},
		{"max zero", "a b", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line, tt.maxTokens)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q, %d) = %q, want %q", tt.line, tt.maxTokens, got, tt.want)
			}
		})
	}
}
