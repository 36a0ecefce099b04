// Package style defines the visual styling for taglog's own CLI output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. The defaults are embedded; a user styles file can
// override them at runtime.
package style

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	Width       int    `yaml:"width,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
var Registry map[string]lipgloss.Style

// Adaptive colors loaded from YAML
var colors map[string]lipgloss.AdaptiveColor

func init() {
	if err := load(defaultStyles); err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
}

// LoadStyles loads style configuration from a YAML file, replacing the
// embedded defaults.
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	if err := load(data); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func load(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return err
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	Registry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		Registry[name] = buildStyle(def)
	}

	return nil
}

// Get returns the style registered under name, or a zero style when the
// name is unknown.
func Get(name string) lipgloss.Style {
	if s, ok := Registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style
}
