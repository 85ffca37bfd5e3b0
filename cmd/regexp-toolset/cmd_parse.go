package main

import (
	"fmt"

	"github.com/johnthecat/regexp-toolset-sub000/format"
	"github.com/johnthecat/regexp-toolset-sub000/parser"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var color bool
	var spans bool
	var bare bool

	cmd := &cobra.Command{
		Use:   "parse <pattern>",
		Short: "Parse a /pattern/flags literal and dump its syntax tree",
		Long: `Parse a /pattern/flags literal and dump its syntax tree.

With --bare the argument is a pattern body without delimiters or flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := parseArg(args[0], bare)
			if err != nil {
				return report(cmd.ErrOrStderr(), err)
			}
			log.Debugf("parsed %q as %s", args[0], node.Kind())

			out := cmd.OutOrStdout()
			var encoder format.Encoder
			switch outputFormat {
			case "tree":
				encoder = format.NewTreeEncoder(out, format.WithColor(color), format.WithSpans(spans))
			case "json":
				encoder = format.NewASTJSONEncoder(out)
			case "line":
				encoder = format.NewLineEncoder(out)
			case "go":
				pp.ColoringEnabled = color
				_, err := pp.Fprintln(out, node)
				return err
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, line, go)")
	cmd.Flags().BoolVar(&color, "color", false, "colorize tree and go output")
	cmd.Flags().BoolVar(&spans, "spans", true, "include byte spans in tree output")
	cmd.Flags().BoolVar(&bare, "bare", false, "parse a pattern body without delimiters")

	return cmd
}

func parseArg(src string, bare bool) (parser.Node, error) {
	if bare {
		return parser.ParseRegexpNode(src)
	}
	return parser.ParseRegexp(src)
}
