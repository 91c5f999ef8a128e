// Copyright © 2026 The diagview authors

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"

	"github.com/diagview/diagview/diagnostic"
)

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore <diags.json>",
	Short: "Browse diagnostics in a batch file interactively",
	Long: `Open an interactive prompt over a batch file. Each diagnostic can be
inspected on its own, with the same rendering options as the render
command.

Commands at the prompt:
  list         One summary line per diagnostic
  show <n>     Render diagnostic n
  next, prev   Step through diagnostics
  quit         Exit (also Ctrl-D)`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBatch(args[0])
		if err != nil {
			return err
		}
		return explore(b, renderOptions())
	},
}

func explore(b *batch, opts diagnostic.Options) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "diagview> ",
		HistoryFile:       exploreHistoryPath(),
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	cur := -1
	for {
		line, err := rl.ReadLine()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil // EOF
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "q", "exit":
			return nil
		case "list", "l":
			listDiags(b)
		case "show", "s":
			if len(fields) < 2 {
				fmt.Println("usage: show <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 || n >= len(b.diags) {
				fmt.Printf("no diagnostic %s (have 0..%d)\n", fields[1], len(b.diags)-1)
				continue
			}
			cur = n
			showDiag(b, cur, opts)
		case "next", "n":
			if cur+1 >= len(b.diags) {
				fmt.Println("at last diagnostic")
				continue
			}
			cur++
			showDiag(b, cur, opts)
		case "prev", "p":
			if cur <= 0 {
				fmt.Println("at first diagnostic")
				continue
			}
			cur--
			showDiag(b, cur, opts)
		default:
			fmt.Printf("unknown command %q (try list, show, next, prev, quit)\n", fields[0])
		}
	}
}

func listDiags(b *batch) {
	for i, d := range b.diags {
		loc := "<no location>"
		if pos, ok := b.files.Resolve(d.Loc); ok {
			loc = pos.String()
		}
		fmt.Printf("%3d  %-9s %s  %s\n", i, d.Severity, loc, d.Message)
	}
}

// showDiag renders one diagnostic with fresh session memory so repeated
// views always print the full include stack and snippet.
func showDiag(b *batch, n int, opts diagnostic.Options) {
	r := diagnostic.New(b.files, opts)
	if err := r.Emit(os.Stdout, b.diags[n], false); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func exploreHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".diagview_history")
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	addRenderFlags(exploreCmd)
}
