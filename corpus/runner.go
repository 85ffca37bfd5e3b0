package corpus

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/johnthecat/regexp-toolset-sub000/format"
	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

var log = commonlog.GetLogger("regexp-toolset.corpus")

// Result is the outcome of one case. Err is nil when the case passed.
type Result struct {
	Case *Case
	Err  error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects the results of a run.
type Report struct {
	Results []Result
}

func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r *Report) String() string {
	failed := r.Failed()
	var sb strings.Builder
	for _, res := range failed {
		fmt.Fprintf(&sb, "FAIL %s\n     %v\n", res.Case, res.Err)
	}
	fmt.Fprintf(&sb, "%d cases, %d passed, %d failed\n", len(r.Results), len(r.Results)-len(failed), len(failed))
	return sb.String()
}

// Run checks every case of f.
func Run(f *File) *Report {
	report := &Report{}
	for _, c := range f.Cases {
		err := Check(c)
		if err != nil {
			log.Debugf("%s: %v", c, err)
		}
		report.Results = append(report.Results, Result{Case: c, Err: err})
	}
	return report
}

// RunFiles loads and runs every file matching the glob patterns, in name
// order.
func RunFiles(patterns ...string) (*Report, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	report := &Report{}
	for _, file := range files {
		f, err := Load(file)
		if err != nil {
			return nil, err
		}
		log.Infof("running %d cases from %s", len(f.Cases), file)
		report.Results = append(report.Results, Run(f).Results...)
	}
	return report, nil
}

// Check runs a single case.
func Check(c *Case) error {
	re, err := parser.ParseRegexp(c.Pattern)
	if c.Expect != nil {
		return checkFailure(err, *c.Expect)
	}
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	if printed := format.PrintRegexpNode(re); printed != c.Pattern {
		return fmt.Errorf("round-trip mismatch: printed %s", printed)
	}
	return checkSpans(re)
}

func checkFailure(err error, fragment string) error {
	if err == nil {
		return fmt.Errorf("parsed, want error containing %q", fragment)
	}
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return fmt.Errorf("error %v is not a syntax error", err)
	}
	if !strings.Contains(syntaxErr.Message, fragment) {
		return fmt.Errorf("error %q does not contain %q", syntaxErr.Message, fragment)
	}
	return nil
}

// checkSpans verifies that every node lies inside its parent and inside
// the source.
func checkSpans(re *parser.RegexpNode) error {
	var problems []string
	parser.TraverseRegexpNode(re, parser.Visitors{
		parser.KindAny: parser.Enter(func(n, parent parser.Node) {
			span := n.Span()
			if span.End < span.Start-1 {
				problems = append(problems, fmt.Sprintf("%s has a negative span %d:%d", n.Kind(), span.Start, span.End))
			}
			if parent != nil && !parent.Span().Contains(span) {
				problems = append(problems, fmt.Sprintf("%s %d:%d escapes %s %d:%d",
					n.Kind(), span.Start, span.End, parent.Kind(), parent.Span().Start, parent.Span().End))
			}
		}),
	})
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
