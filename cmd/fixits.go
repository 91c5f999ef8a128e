// Copyright © 2026 The diagview authors

package cmd

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/diagview/diagview/diagnostic"
)

// fixitsCmd represents the fixits command
var fixitsCmd = &cobra.Command{
	Use:   "fixits <diags.json>",
	Short: "Emit machine-readable fix-it lines only",
	Long: `Emit one fix-it line per suggested edit across all diagnostics in a
batch file, in the stable machine-parseable format:

  fix-it:"a.c":{3:5-3:5}:"x"

No human-readable output is produced; the format ignores color and wrap
settings so tool consumers can parse it byte for byte.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBatch(args[0])
		if err != nil {
			return err
		}
		w := bufio.NewWriter(os.Stdout)
		for _, d := range b.diags {
			for _, line := range diagnostic.ParseableFixits(b.files, d.Fixes) {
				if _, err := w.WriteString(line.String() + "\n"); err != nil {
					return err
				}
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(fixitsCmd)
}
