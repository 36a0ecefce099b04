package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with the glamour library.
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a custom style path
	Width int    // terminal width, 0 = auto-detect
}

// NewGlamourRenderer creates a markdown renderer with auto-detection.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{
		Style: "auto",
		Width: 0,
	}
}

// Render converts markdown content to styled terminal output. Non-markdown
// content and any rendering failure fall back to the raw content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
