package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnthecat/regexp-toolset-sub000/format"
	"github.com/johnthecat/regexp-toolset-sub000/parser"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyEnv  = "REGEXP_TOOLSET_HISTORY"
	historyFile = ".regexp_toolset_history"
	replPrompt  = "re> "
)

const replHelp = `Enter a /pattern/flags literal to see its tree.
  :tree :json :line :tokens :print   switch the output format
  :bare                              toggle patterns without delimiters
  :help                              show this text
  :quit                              leave
`

func newReplCmd() *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse patterns interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			histPath := historyPath()
			if err := readHistory(ln, histPath); err != nil {
				log.Warningf("read history %s: %s", histPath, err)
			}
			defer func() {
				if err := writeHistory(ln, histPath); err != nil {
					log.Warningf("write history %s: %s", histPath, err)
				}
			}()

			s := &session{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), mode: "tree", color: color}
			fmt.Fprint(s.out, replHelp)
			for {
				line, err := ln.Prompt(replPrompt)
				if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
					fmt.Fprintln(s.out)
					return nil
				}
				if err != nil {
					return fmt.Errorf("read line: %w", err)
				}
				if strings.TrimSpace(line) == "" {
					continue
				}
				ln.AppendHistory(line)
				if s.handle(line) {
					return nil
				}
			}
		},
	}

	cmd.Flags().BoolVar(&color, "color", true, "colorize tree output")

	return cmd
}

// history is the part of liner.State that persists entered lines.
type history interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

func readHistory(ln history, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = ln.ReadHistory(f)
	return err
}

func writeHistory(ln history, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := ln.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func historyPath() string {
	if path := os.Getenv(historyEnv); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, historyFile)
}

// session holds the REPL state between lines.
type session struct {
	out    io.Writer
	errOut io.Writer
	mode   string
	bare   bool
	color  bool
}

// handle evaluates one input line and reports whether the REPL should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		switch cmd := strings.ToLower(line[1:]); cmd {
		case "quit", "q":
			return true
		case "help":
			fmt.Fprint(s.out, replHelp)
		case "bare":
			s.bare = !s.bare
			fmt.Fprintf(s.out, "bare patterns: %v\n", s.bare)
		case "tree", "json", "line", "tokens", "print":
			s.mode = cmd
		default:
			fmt.Fprintf(s.errOut, "unknown command %s, type :help\n", line)
		}
		return false
	}

	if s.mode == "tokens" {
		if err := format.NewTokenLineEncoder(s.out).Encode(parser.Tokenize(line)); err != nil {
			reportError(s.errOut, err)
		}
		return false
	}

	node, err := parseArg(line, s.bare)
	if err != nil {
		reportError(s.errOut, err)
		return false
	}

	var encoder format.Encoder
	switch s.mode {
	case "json":
		encoder = format.NewASTJSONEncoder(s.out)
	case "line":
		encoder = format.NewLineEncoder(s.out)
	case "print":
		fmt.Fprintln(s.out, format.PrintRegexpNode(node))
		return false
	default:
		encoder = format.NewTreeEncoder(s.out, format.WithColor(s.color))
	}
	if err := encoder.Encode(node); err != nil {
		reportError(s.errOut, err)
	}
	return false
}
