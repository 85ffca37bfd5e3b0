package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/johnthecat/regexp-toolset-sub000/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "EBNF grammar tools",
	}

	cmd.AddCommand(newGrammarShowCmd())
	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:       "show <tokens|syntax>",
		Short:     "Print one of the built-in grammars",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"tokens", "syntax"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var source string
			var load func() error
			switch args[0] {
			case "tokens":
				source = grammar.TokensSource()
				load = func() error { _, err := grammar.Tokens(); return err }
			case "syntax":
				source = grammar.SyntaxSource()
				load = func() error { _, err := grammar.Syntax(); return err }
			default:
				return fmt.Errorf("unknown grammar: %s (expected tokens or syntax)", args[0])
			}

			if verify {
				if err := load(); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return failed{err}
				}
			}
			_, err := io.WriteString(cmd.OutOrStdout(), source)
			return err
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the grammar before printing it")

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := grammar.LoadGrammar(args[0], startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return failed{err}
			}
			log.Infof("%s: ok", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.SyntaxStart, "start production for verification")

	return cmd
}

// printErrors writes one line per error when err wraps an error list.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
