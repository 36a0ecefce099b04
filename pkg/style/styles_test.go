package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	// Test that all expected styles are present
	expectedStyles := []string{
		"Header", "Timestamp",
		"Error", "Warning", "Info",
		"Muted", "MutedItalic",
		"SwatchName", "Indent",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := Registry[styleName]
			assert.True(t, exists, "style %q missing from registry", styleName)
		})
	}
}

func TestGetUnknownStyle(t *testing.T) {
	// Unknown names render text unchanged rather than failing
	s := Get("NoSuchStyle")
	assert.Equal(t, "plain", s.Render("plain"))
}

func TestLoadStylesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	err := os.WriteFile(path, []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Timestamp:
    bold: true
    foreground: accent
`), 0644)
	require.NoError(t, err)

	// Restore embedded defaults for other tests
	t.Cleanup(func() { require.NoError(t, load(defaultStyles)) })

	require.NoError(t, LoadStyles(path))

	_, exists := Registry["Timestamp"]
	assert.True(t, exists)

	// The override replaces the whole registry
	_, exists = Registry["Header"]
	assert.False(t, exists)
}

func TestLoadStylesMissingFile(t *testing.T) {
	err := LoadStyles(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadStylesMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles: ["), 0644))

	t.Cleanup(func() { require.NoError(t, load(defaultStyles)) })

	err := LoadStyles(path)
	assert.Error(t, err)
}
