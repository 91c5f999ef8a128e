// Copyright © 2026 The diagview authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diagview/diagview/docs"
)

// docTopics maps topic names to the embedded references.
var docTopics = map[string]string{
	"format": docs.FixitFormat,
	"input":  docs.InputFormat,
}

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc TOPIC",
	Short: "Show reference documentation for diagview file formats",
	Long: `Show built-in reference documentation.

Topics:
  format    The machine-readable fix-it line format
  input     The JSON batch input consumed by render, fixits, and explore

Examples:
  diagview doc format
  diagview doc input`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, ok := docTopics[args[0]]
		if !ok {
			return fmt.Errorf("unknown topic %q (try \"format\" or \"input\")", args[0])
		}
		cmd.Print(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
}
