package main

import (
	"fmt"

	"github.com/johnthecat/regexp-toolset-sub000/format"
	"github.com/johnthecat/regexp-toolset-sub000/parser"
	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	var at int
	var bare bool

	cmd := &cobra.Command{
		Use:   "print <pattern>",
		Short: "Parse a pattern and print it back from its syntax tree",
		Long: `Parse a pattern and print it back from its syntax tree.

With --at the innermost node covering that byte offset is printed instead of
the whole pattern.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := parseArg(args[0], bare)
			if err != nil {
				return report(cmd.ErrOrStderr(), err)
			}
			if at >= 0 {
				inner, _ := parser.NodeAt(node, at)
				if inner == nil {
					return fmt.Errorf("offset %d is outside the pattern", at)
				}
				node = inner
			}
			out := cmd.OutOrStdout()
			if err := format.NewRegexpPrinter(out).Print(node); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().IntVar(&at, "at", -1, "print the innermost node at this byte offset")
	cmd.Flags().BoolVar(&bare, "bare", false, "parse a pattern body without delimiters")

	return cmd
}
