package main

import (
	"fmt"

	"github.com/johnthecat/regexp-toolset-sub000/corpus"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file.rxc>...",
		Short: "Run conformance corpus files",
		Long: `Run conformance corpus files.

Each line of a corpus file is either "ok /pattern/flags", which must parse and
print back unchanged, or "fail \"fragment\" /pattern/flags", which must be
rejected with a message containing the fragment. Arguments may be globs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := corpus.RunFiles(args...)
			if err != nil {
				return report(cmd.ErrOrStderr(), err)
			}
			if len(rep.Results) == 0 {
				return fmt.Errorf("no cases found in %v", args)
			}

			failed := rep.Failed()
			if !quiet || len(failed) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), rep.String())
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d cases failed", len(failed), len(rep.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing when every case passes")

	return cmd
}
