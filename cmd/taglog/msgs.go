package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Attach colored tags to console log lines"
	MsgLogShort    = "Emit a tagged console line"
	MsgColorsShort = "List the available color palette"
	MsgColorsLong  = "List every color name taglog understands, foregrounds and backgrounds, including aliases from your config file."

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term or text"
	MsgFlagTag     = "Tag spec content[:fg[:bg]], repeatable"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrLoadConfig = "failed to load config: %w"
	MsgErrBadFormat  = "invalid --format value: %w"
)

// MsgRootLong is the root command's long help text.
const MsgRootLong = `taglog decorates console output with colored bracketed tags, e.g.

  12:04:05 [Login] [Server] - New connection accepted

Tags carry an optional foreground and background color; lines are
timestamped and degrade to plain text when output is piped or the
terminal has no color support.`

// Longer texts embedded from the msgs directory
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
