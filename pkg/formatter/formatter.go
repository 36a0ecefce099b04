// Package formatter assembles colored tag lines and forwards them to an
// output sink. A LineFormatter accumulates tags and a message, renders them
// into a single decorated line on Log, and resets itself for reuse.
package formatter

import (
	"strings"

	"github.com/arthur-debert/taglog/pkg/color"
	"github.com/arthur-debert/taglog/pkg/logging"
	"github.com/arthur-debert/taglog/pkg/tag"
	"github.com/rs/zerolog"
)

// WriterFunc is the output sink collaborator. It receives the fully rendered
// line and is invoked exactly once per Log call; its outcome is not
// inspected.
type WriterFunc func(line string)

// LineFormatter accumulates tags and a pending message, then emits them as
// one line through the injected writer. Not safe for concurrent use; each
// instance belongs to a single logical caller.
type LineFormatter struct {
	tags    []tag.Tag
	message string
	write   WriterFunc
	logger  zerolog.Logger
}

// New creates an empty LineFormatter that emits through w.
func New(w WriterFunc) *LineFormatter {
	return &LineFormatter{
		write:  w,
		logger: logging.GetLogger("formatter"),
	}
}

// AddTag appends t to the tag sequence. Zero-value tags are ignored, and a
// tag equal by value to one already present is silently dropped, so the
// sequence stays unique by (content, color, background).
func (f *LineFormatter) AddTag(t tag.Tag) {
	if t.IsZero() {
		f.logger.Debug().Msg("Ignoring tag with empty content")
		return
	}
	for _, existing := range f.tags {
		if existing == t {
			return
		}
	}
	f.tags = append(f.tags, t)
}

// AddTagSpec resolves the given color names and appends the resulting tag,
// a convenience over tag.New plus AddTag.
func (f *LineFormatter) AddTagSpec(content, fg, bg string) {
	if t, ok := tag.New(content, fg, bg); ok {
		f.AddTag(t)
	}
}

// AddTags appends each tag in order, with the same per-tag rules as AddTag.
func (f *LineFormatter) AddTags(tags []tag.Tag) {
	for _, t := range tags {
		f.AddTag(t)
	}
}

// RemoveTag removes the first tag equal by value to t. No-op when t is a
// zero tag or no match exists.
func (f *LineFormatter) RemoveTag(t tag.Tag) {
	if t.IsZero() {
		return
	}
	for i, existing := range f.tags {
		if existing == t {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			return
		}
	}
}

// RemoveTags removes each tag in order, with the same per-tag rules as
// RemoveTag.
func (f *LineFormatter) RemoveTags(tags []tag.Tag) {
	for _, t := range tags {
		f.RemoveTag(t)
	}
}

// SetMessage stores the pending message emitted by the next Log call.
func (f *LineFormatter) SetMessage(msg string) {
	f.message = msg
}

// Message returns the pending message.
func (f *LineFormatter) Message() string {
	return f.message
}

// Tags returns a copy of the current tag sequence in insertion order.
func (f *LineFormatter) Tags() []tag.Tag {
	out := make([]tag.Tag, len(f.tags))
	copy(out, f.tags)
	return out
}

// TagLine renders the accumulated tags: a leading reset, then each tag
// followed by a reset and a single space.
func (f *LineFormatter) TagLine() string {
	var b strings.Builder
	b.WriteString(color.Reset)
	for _, t := range f.tags {
		b.WriteString(t.Render())
		b.WriteString(color.Reset)
		b.WriteString(" ")
	}
	return b.String()
}

// String renders the complete line: tag line, separator, message. The tag
// line's trailing space collapses into the separator.
func (f *LineFormatter) String() string {
	return strings.TrimSuffix(f.TagLine(), " ") + " - " + f.message
}

// Log stores msg, forwards the rendered line to the writer, then
// unconditionally clears both the tag sequence and the message. The
// formatter is immediately reusable.
func (f *LineFormatter) Log(msg string) {
	f.SetMessage(msg)
	f.write(f.String())
	f.tags = nil
	f.message = ""
}
