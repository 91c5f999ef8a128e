// Copyright © 2026 The diagview authors

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diagview/diagview/diagnostic"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

var renderFlagNames = []string{
	"wrap-column", "tab-stop", "macro-backtrace-limit", "parseable-fixits",
	"show-source-ranges", "no-caret", "no-column", "no-location", "no-fixits",
}

// addRenderFlags defines the layout flags shared by render and explore.
// Binding to viper happens in PreRunE so that each command's own flags
// win; the same keys can also come from .diagview.yaml or DIAGVIEW_*
// environment variables.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Int("wrap-column", 0, "word-wrap messages at this column (0 disables wrapping)")
	cmd.Flags().Int("tab-stop", diagnostic.DefaultTabStop, "tab stop width used when expanding source lines")
	cmd.Flags().Int("macro-backtrace-limit", 0, "elide the middle of macro backtraces deeper than this (0 shows all)")
	cmd.Flags().Bool("parseable-fixits", false, "append machine-readable fix-it lines")
	cmd.Flags().Bool("show-source-ranges", false, "append {l:c-l:c} range info to location lines")
	cmd.Flags().Bool("no-caret", false, "suppress source snippets and caret rows")
	cmd.Flags().Bool("no-column", false, "omit columns from location lines")
	cmd.Flags().Bool("no-location", false, "omit location lines entirely")
	cmd.Flags().Bool("no-fixits", false, "suppress fix-it rendering in snippets")
	cmd.PreRunE = func(c *cobra.Command, args []string) error {
		for _, name := range renderFlagNames {
			if err := viper.BindPFlag(name, c.Flags().Lookup(name)); err != nil {
				return err
			}
		}
		return nil
	}
}

// renderOptions resolves the effective layout options from flags,
// environment, and config file.
func renderOptions() diagnostic.Options {
	opts := diagnostic.DefaultOptions()
	opts.Color = colorMode()
	opts.WrapColumn = viper.GetInt("wrap-column")
	if viper.IsSet("tab-stop") {
		opts.TabStop = viper.GetInt("tab-stop")
	}
	opts.MacroBacktraceLimit = viper.GetInt("macro-backtrace-limit")
	opts.ShowParseableFixits = viper.GetBool("parseable-fixits")
	opts.ShowSourceRanges = viper.GetBool("show-source-ranges")
	opts.ShowCarets = !viper.GetBool("no-caret")
	opts.ShowColumn = !viper.GetBool("no-column")
	opts.ShowLocation = !viper.GetBool("no-location")
	opts.ShowFixits = !viper.GetBool("no-fixits")
	return opts
}
