package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/taglog/pkg/config"
	"github.com/arthur-debert/taglog/pkg/console"
	"github.com/arthur-debert/taglog/pkg/formatter"
	"github.com/arthur-debert/taglog/pkg/style"
	"github.com/arthur-debert/taglog/pkg/tag"
	"github.com/arthur-debert/taglog/pkg/terminal"
)

func newLogCmd() *cobra.Command {
	var (
		tagSpecs   []string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "log [message...]",
		Short: MsgLogShort,
		Long: `Log emits one timestamped console line decorated with the given tags.

Tags are specified as content[:fg[:bg]]:

  taglog log -t Login:red -t Server:blue:white "New connection accepted"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			format, err := resolveFormat(cfg, formatName)
			if err != nil {
				return err
			}

			w := console.New(os.Stdout, format)
			f := formatter.New(w.WriteLine)
			for _, spec := range tagSpecs {
				if t, ok := tag.ParseSpec(spec); ok {
					f.AddTag(t)
				} else {
					fmt.Fprintf(os.Stderr, "ignoring empty tag spec %q\n", spec)
				}
			}

			f.Log(strings.Join(args, " "))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tagSpecs, "tag", "t", nil, MsgFlagTag)
	cmd.Flags().StringVarP(&formatName, "format", "f", "", MsgFlagFormat)

	return cmd
}

// setup loads the user config and applies its side effects: color aliases
// and a custom styles file when configured.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	cfg.Apply()

	if cfg.Output.Styles != "" {
		if err := style.LoadStyles(cfg.Output.Styles); err != nil {
			fmt.Fprintf(os.Stderr, "falling back to default styles: %v\n", err)
		}
	}

	return cfg, nil
}

// resolveFormat picks the output format: the --format flag wins over the
// config file, and auto is collapsed against stdout.
func resolveFormat(cfg *config.Config, formatName string) (terminal.Format, error) {
	name := formatName
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := terminal.ParseFormat(name)
	if err != nil {
		return terminal.FormatText, fmt.Errorf(MsgErrBadFormat, err)
	}
	return terminal.Resolve(format, os.Stdout), nil
}
