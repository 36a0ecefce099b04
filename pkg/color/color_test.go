package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveForeground(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"known color", "red", "\x1b[31m"},
		{"default resolves to reset", "default", Reset},
		{"trims whitespace", "  green  ", "\x1b[32m"},
		{"unknown color", "mauve", ""},
		{"background name never valid", "bgRed", ""},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveForeground(tt.input))
		})
	}
}

func TestResolveBackground(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare name synthesized", "red", "\x1b[41m"},
		{"prefixed name direct", "bgRed", "\x1b[41m"},
		{"trims whitespace", " bgCyan ", "\x1b[46m"},
		{"unknown color", "mauve", ""},
		{"unknown prefixed", "bgMauve", ""},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBackground(tt.input))
		})
	}
}

func TestResolveBackgroundMatchesPrefixedForm(t *testing.T) {
	for _, name := range []string{"red", "green", "yellow", "blue", "cyan", "white"} {
		prefixed := BackgroundPrefix + capitalize(name)
		assert.Equal(t, ResolveBackground(prefixed), ResolveBackground(name),
			"bare and prefixed forms of %q must resolve identically", name)
	}
}

func TestSetAliases(t *testing.T) {
	SetAliases(map[string]string{
		"danger":  "red",
		"calm":    "bgBlue",
		"invalid": "mauve",
	})
	t.Cleanup(func() { SetAliases(nil) })

	assert.Equal(t, "\x1b[31m", ResolveForeground("danger"))
	assert.Equal(t, "\x1b[44m", ResolveBackground("calm"))

	// Alias pointing at an unknown palette entry is dropped
	assert.Equal(t, "", ResolveForeground("invalid"))
}
