// Copyright © 2018 The ELPS authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Fwxzxh/minilisp/lisp"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minilisp",
	Short: "minilisp — a small S-expression interpreter",
	Long: `minilisp is a small interpreted expression language with S-expression
syntax implemented in Go.  It supports numbers, booleans, strings, symbols,
lists, variable binding, conditionals, and first-class functions.

Getting started:
  minilisp run -e '(+ 1 2)'     Evaluate an expression
  minilisp run file.lisp        Run a source file, one expression per line
  minilisp repl                 Start an interactive REPL

Language overview:
  Numbers are 64-bit floats, booleans are the literals true and false, and
  the empty list () is the unit value.  Variables are bound at the top level
  with (define x expr).  Procedures are created with (lambda (args) body) and
  observe the bindings visible at their call site.  Conditionals use
  (if cond then else) and require a boolean condition.

Built-in operators:
  + - * / > concat`,
	Version: lisp.MinilispVersion,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.minilisp.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".minilisp" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".minilisp")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
