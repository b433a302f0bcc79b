// Copyright © 2018 The ELPS authors

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fwxzxh/minilisp/lisp"
	"github.com/Fwxzxh/minilisp/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or files.

With --expression each argument is evaluated as a single expression.
Otherwise each argument names a file whose non-empty lines each hold one
expression, evaluated in order against a shared environment.`,
	Run: func(cmd *cobra.Command, args []string) {
		env := lisp.NewEnv()
		for _, arg := range args {
			var err error
			if runExpression {
				err = evalExpression(env, arg, os.Stdout)
			} else {
				err = evalFile(env, arg, os.Stdout)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

// evalExpression parses and evaluates one expression, writing its value to w
// when printing is enabled.
func evalExpression(env *lisp.LEnv, source string, w io.Writer) error {
	expr, err := parser.Parse(source)
	if err != nil {
		return err
	}
	val, err := env.Eval(expr)
	if err != nil {
		return err
	}
	if runPrint {
		fmt.Fprintln(w, val) //nolint:errcheck // best-effort output
	}
	return nil
}

// evalFile evaluates path line by line against env.  The parse contract is
// one expression per call, so files hold one expression per non-empty line,
// the same shape the REPL reads.
func evalFile(env *lisp.LEnv, path string, w io.Writer) error {
	b, err := os.ReadFile(path) //#nosec G304
	if err != nil {
		return err
	}
	return evalLines(env, string(b), w)
}

func evalLines(env *lisp.LEnv, source string, w io.Writer) error {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := evalExpression(env, line, w); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", true,
		"Print expression values to stdout")
}
