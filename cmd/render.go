// Copyright © 2026 The diagview authors

package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diagview/diagview/diagnostic"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <diags.json>",
	Short: "Pretty-print all diagnostics in a batch file",
	Long: `Render every diagnostic in a JSON batch file as human-readable text:
include-stack header, severity-tagged message, and one annotated source
snippet per macro backtrace level.

Example:
  diagview render diags.json
  diagview render --wrap-column 80 --macro-backtrace-limit 4 diags.json`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBatch(args[0])
		if err != nil {
			return err
		}
		return renderBatch(os.Stdout, b, renderOptions())
	},
}

// renderBatch renders all diagnostics in order on one Renderer, so
// session memory suppresses repeated include stacks and supplemental
// note context across the stream.
func renderBatch(w io.Writer, b *batch, opts diagnostic.Options) error {
	r := diagnostic.New(b.files, opts)
	for i, d := range b.diags {
		if err := r.Emit(w, d, b.supplemental[i]); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addRenderFlags(renderCmd)
}
