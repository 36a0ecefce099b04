// Package tag defines the colored tag attached to console lines.
package tag

import (
	"strings"

	"github.com/arthur-debert/taglog/pkg/color"
)

// Tag is a bracketed label rendered in front of a log line. Content is the
// trimmed label text; Color and BgColor hold resolved ANSI escape sequences,
// or "" for no styling. Tags compare by value.
type Tag struct {
	Content string
	Color   string
	BgColor string
}

// New builds a Tag from a label and optional foreground/background color
// names, resolving the names against the palette. It returns ok=false when
// the content is empty after trimming. Unknown color names degrade to no
// styling rather than failing.
func New(content, fg, bg string) (Tag, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Tag{}, false
	}
	return Tag{
		Content: content,
		Color:   color.ResolveForeground(fg),
		BgColor: color.ResolveBackground(bg),
	}, true
}

// ParseSpec builds a Tag from a CLI tag spec of the form
// "content[:fg[:bg]]", e.g. "Login:red" or "Server:blue:white". Empty
// segments are allowed: "Sync::red" sets only the background.
func ParseSpec(spec string) (Tag, bool) {
	parts := strings.SplitN(spec, ":", 3)
	var fg, bg string
	if len(parts) > 1 {
		fg = parts[1]
	}
	if len(parts) > 2 {
		bg = parts[2]
	}
	return New(parts[0], fg, bg)
}

// IsZero reports whether the tag carries no content, i.e. it failed
// validation or was never constructed through New.
func (t Tag) IsZero() bool {
	return t.Content == ""
}

// Render produces the tag's escape-decorated text: background escape, then
// foreground escape, then the bracketed content. No trailing reset is
// appended; the caller owns reset placement.
func (t Tag) Render() string {
	var b strings.Builder
	b.WriteString(t.BgColor)
	b.WriteString(t.Color)
	b.WriteString("[")
	b.WriteString(t.Content)
	b.WriteString("]")
	return b.String()
}
