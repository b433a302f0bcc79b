// Copyright © 2018 The ELPS authors

package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/Fwxzxh/minilisp/lisp"
	"github.com/Fwxzxh/minilisp/parser"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// RunRepl runs a simple repl with a fresh top-level environment.
func RunRepl(prompt string, opts ...Option) {
	RunEnv(lisp.NewEnv(), prompt, opts...)
}

// RunEnv runs a simple repl with env as the top-level environment.  The
// environment persists across lines, so a define on one line is visible on
// later lines.  Each line of input holds exactly one expression.
func RunEnv(env *lisp.LEnv, prompt string, opts ...Option) {
	cfg := newConfig(opts...)
	stderr := io.WriteCloser(os.Stderr)
	if cfg.stderr != nil {
		stderr = cfg.stderr
	}

	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)
	rlCfg := &readline.Config{
		Stdout:            stderr,
		Stderr:            stderr,
		Prompt:            prompt,
		HistoryFile:       histFile,
		HistorySearchFold: true,
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadLine()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		expr, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintln(stderr, err) //nolint:errcheck // best-effort error display
			continue
		}
		val, err := env.Eval(expr)
		if err != nil {
			fmt.Fprintln(stderr, err) //nolint:errcheck // best-effort error display
			continue
		}
		fmt.Fprintln(stderr, val) //nolint:errcheck // best-effort REPL output
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minilisp_history")
}

// ensureHistoryFilePermissions restricts the history file to the owning user,
// creating it when absent.  Command history can contain sensitive input.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600) //#nosec G304
	if err != nil {
		return
	}
	f.Close() //nolint:errcheck,gosec // best-effort cleanup
	_ = os.Chmod(path, 0600)
}
