package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

// reportError writes err to w, drawing the offending span for syntax errors.
func reportError(w io.Writer, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintln(w, syntaxErr.Render())
		return
	}
	fmt.Fprintf(w, "error: %s\n", err)
}

// failed marks an error that was already reported to the user.
type failed struct{ err error }

func (f failed) Error() string { return f.err.Error() }
func (f failed) Unwrap() error { return f.err }

// report prints err to the command's error stream and returns it marked as
// reported.
func report(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	reportError(w, err)
	return failed{err}
}
