package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("regexp-toolset.cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var reported failed
		if !errors.As(err, &reported) {
			reportError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "regexp-toolset",
		Short:         "Parse, print and inspect ECMAScript regular expressions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbose-1, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}
