// Package console provides the output sink that LineFormatter writes
// through: it prefixes each line with a timestamp and prints it to the
// configured destination, stripping ANSI escapes when the destination does
// not render them.
package console

import (
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/taglog/pkg/style"
	"github.com/arthur-debert/taglog/pkg/terminal"
)

// TimeFormat is the timestamp layout for console entries.
const TimeFormat = "15:04:05"

// Writer turns rendered lines into timestamped console entries.
type Writer struct {
	out    io.Writer
	format terminal.Format
	now    func() time.Time
}

// New creates a Writer printing to out in the given concrete format.
// FormatAuto must be resolved by the caller first, since detection needs an
// *os.File.
func New(out io.Writer, format terminal.Format) *Writer {
	return &Writer{
		out:    out,
		format: format,
		now:    time.Now,
	}
}

// WriteLine prints one timestamped console entry. It satisfies
// formatter.WriterFunc and never reports failure to the caller.
func (w *Writer) WriteLine(line string) {
	stamp := w.now().Format(TimeFormat)
	if w.format == terminal.FormatText {
		fmt.Fprintf(w.out, "%s %s\n", stamp, terminal.StripEscapes(line))
		return
	}
	fmt.Fprintf(w.out, "%s %s\n", style.Get("Timestamp").Render(stamp), line)
}
