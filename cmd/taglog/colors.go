package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/taglog/pkg/color"
	"github.com/arthur-debert/taglog/pkg/style"
	"github.com/arthur-debert/taglog/pkg/terminal"
)

func newColorsCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "colors",
		Short: MsgColorsShort,
		Long:  MsgColorsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			format, err := resolveFormat(cfg, formatName)
			if err != nil {
				return err
			}

			printPalette(format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", MsgFlagFormat)

	return cmd
}

func printPalette(format terminal.Format) {
	var foregrounds, backgrounds []string
	for _, name := range color.Names() {
		if strings.HasPrefix(name, color.BackgroundPrefix) {
			backgrounds = append(backgrounds, name)
		} else {
			foregrounds = append(foregrounds, name)
		}
	}
	sort.Strings(foregrounds)
	sort.Strings(backgrounds)

	fmt.Println(formatBold("Foreground colors:"))
	for _, name := range foregrounds {
		printSwatch(name, color.Table[name], format)
	}

	fmt.Println()
	fmt.Println(formatBold("Background colors:"))
	for _, name := range backgrounds {
		printSwatch(name, color.Table[name], format)
	}
}

func printSwatch(name, escape string, format terminal.Format) {
	label := style.Get("SwatchName").Render(name)
	if format == terminal.FormatText {
		fmt.Fprintf(os.Stdout, "  %s\n", terminal.StripEscapes(label))
		return
	}
	fmt.Fprintf(os.Stdout, "  %s %ssample%s\n", label, escape, color.Reset)
}
