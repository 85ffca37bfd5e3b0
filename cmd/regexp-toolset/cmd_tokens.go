package main

import (
	"fmt"

	"github.com/johnthecat/regexp-toolset-sub000/format"
	"github.com/johnthecat/regexp-toolset-sub000/grammar"
	"github.com/johnthecat/regexp-toolset-sub000/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string
	var useGrammar bool

	cmd := &cobra.Command{
		Use:   "tokens <source>",
		Short: "Split a pattern source into tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := parser.Tokenize(args[0])
			if useGrammar {
				g, err := grammar.Tokens()
				if err != nil {
					return fmt.Errorf("load token grammar: %w", err)
				}
				lx, err := grammar.NewLexer(g, args[0])
				if err != nil {
					return fmt.Errorf("create lexer: %w", err)
				}
				if tokens, err = lx.Tokenize(); err != nil {
					return fmt.Errorf("tokenize: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "line":
				return format.NewTokenLineEncoder(out).Encode(tokens)
			case "json":
				return format.NewTokenJSONEncoder(out).Encode(tokens)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVar(&useGrammar, "grammar", false, "tokenize with the EBNF reference lexer")

	return cmd
}
