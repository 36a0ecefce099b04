// Package color holds the terminal color palette and name resolution for
// taglog. The palette is a fixed mapping from color names to ANSI escape
// sequences, built once at startup; resolution never fails, unknown names
// simply resolve to "" (no styling).
package color

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/taglog/pkg/logging"
)

// Reset restores the terminal's default rendition. It doubles as the
// "default" palette entry.
const Reset = "\x1b[0m"

// BackgroundPrefix marks background entries in the palette.
const BackgroundPrefix = "bg"

// Table maps color names to ANSI escape sequences. Foreground entries use
// bare names, background entries are prefixed "bg". Treated as immutable
// after init.
var Table = map[string]string{
	"default": Reset,
	"red":     "\x1b[31m",
	"yellow":  "\x1b[33m",
	"green":   "\x1b[32m",
	"blue":    "\x1b[34m",
	"white":   "\x1b[37m",
	"cyan":    "\x1b[36m",

	"bgBlack":   "\x1b[40m",
	"bgRed":     "\x1b[41m",
	"bgGreen":   "\x1b[42m",
	"bgYellow":  "\x1b[43m",
	"bgBlue":    "\x1b[44m",
	"bgMagenta": "\x1b[45m",
	"bgCyan":    "\x1b[46m",
	"bgWhite":   "\x1b[47m",
}

// aliases maps user-defined names onto palette entries. Populated once by
// SetAliases before any resolution happens.
var aliases = map[string]string{}

// SetAliases installs user-defined color aliases, typically loaded from the
// config file. An alias points at an existing palette name; entries naming
// unknown palette colors are dropped.
func SetAliases(m map[string]string) {
	logger := logging.GetLogger("color")
	aliases = make(map[string]string, len(m))
	for alias, target := range m {
		if _, ok := Table[target]; !ok {
			logger.Warn().Str("alias", alias).Str("target", target).
				Msg("Color alias targets unknown palette entry, skipping")
			continue
		}
		aliases[alias] = target
	}
}

// canonical trims the name and follows at most one alias hop.
func canonical(name string) string {
	name = strings.TrimSpace(name)
	if target, ok := aliases[name]; ok {
		return target
	}
	return name
}

// ResolveForeground returns the escape sequence for a foreground color name,
// or "" when the name is unknown or names a background entry.
func ResolveForeground(name string) string {
	name = canonical(name)
	if name == "" || strings.HasPrefix(name, BackgroundPrefix) {
		return ""
	}
	seq, ok := Table[name]
	if !ok {
		logger := logging.GetLogger("color")
		logger.Debug().Str("name", name).
			Msg("Unknown foreground color")
		return ""
	}
	return seq
}

// ResolveBackground returns the escape sequence for a background color name.
// Names already carrying the "bg" prefix are looked up directly; bare names
// are converted, so "red" and "bgRed" resolve to the same entry. Unknown
// names yield "".
func ResolveBackground(name string) string {
	name = canonical(name)
	if name == "" {
		return ""
	}
	if !strings.HasPrefix(name, BackgroundPrefix) {
		name = BackgroundPrefix + capitalize(name)
	}
	seq, ok := Table[name]
	if !ok {
		logger := logging.GetLogger("color")
		logger.Debug().Str("name", name).
			Msg("Unknown background color")
		return ""
	}
	return seq
}

// Names returns the palette names in no particular order.
func Names() []string {
	names := make([]string, 0, len(Table))
	for name := range Table {
		names = append(names, name)
	}
	return names
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
