package parser

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SyntaxError is a fatal grammar violation. Start and End are inclusive
// byte offsets into Source; End == Start-1 marks a position between two
// characters.
type SyntaxError struct {
	Source  string
	Start   int
	End     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Start, e.End)
}

func (e *SyntaxError) Span() Span {
	return Span{Start: e.Start, End: e.End}
}

// Render draws the source, an underline below the offending span and the
// message aligned with the underline:
//
//	/(ab/
//	 ~~~~
//	 group is not closed
//
// Zero-width spans are marked with a single ^.
func (e *SyntaxError) Render() string {
	start := clamp(e.Start, 0, len(e.Source))
	end := clamp(e.End+1, start, len(e.Source))

	pad := strings.Repeat(" ", runewidth.StringWidth(e.Source[:start]))
	mark := "^"
	if e.End >= e.Start {
		width := runewidth.StringWidth(e.Source[start:end])
		if width < 1 {
			width = 1
		}
		mark = strings.Repeat("~", width)
	}

	var b strings.Builder
	b.WriteString(e.Source)
	b.WriteByte('\n')
	b.WriteString(pad)
	b.WriteString(mark)
	b.WriteByte('\n')
	b.WriteString(pad)
	b.WriteString(e.Message)
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p *parser) fail(start, end int, format string, args ...any) error {
	return &SyntaxError{
		Source:  p.src,
		Start:   start,
		End:     end,
		Message: fmt.Sprintf(format, args...),
	}
}
