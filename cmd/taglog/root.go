package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/taglog/internal/version"
	"github.com/arthur-debert/taglog/pkg/cobrax/topics"
	"github.com/arthur-debert/taglog/pkg/logging"
)

//go:embed docs
var docsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "taglog",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but flag the usage error
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Disable automatic help command (the topics package installs its own)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newColorsCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help from the embedded docs
	docs, err := fs.Sub(docsFS, "docs")
	if err == nil {
		opts := topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		}
		if err := topics.Initialize(rootCmd, docs, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("taglog version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
