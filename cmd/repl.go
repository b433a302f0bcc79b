// Copyright © 2018 The ELPS authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Fwxzxh/minilisp/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive minilisp REPL",
	Long: `Start an interactive read-eval-print loop.

Each line of input holds exactly one expression.  The environment persists
for the session, so top-level defines remain visible on later lines.  Line
editing and in-session command history are supported via readline.  Use
Ctrl-D to exit.

Example REPL session:
  minilisp> (define square (lambda (x) (* x x)))
  square
  minilisp> (square 5)
  25
  minilisp> (if (> 5 2) "yes" "no")
  "yes"`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(filepath.Base(os.Args[0]) + "> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
