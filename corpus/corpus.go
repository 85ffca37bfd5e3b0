// Package corpus reads and runs conformance files.
//
// A corpus file lists one case per line. Blank lines and lines starting
// with # are ignored:
//
//	# round-trips and keeps spans consistent
//	ok /a(b)c/gi
//	# fails with a message containing the quoted text
//	fail "group is not closed" /(ab/
package corpus

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type File struct {
	Cases []*Case `parser:"@@*"`
}

// Case is a single corpus entry. Expect is nil for cases that must parse.
type Case struct {
	Pos     lexer.Position
	Ok      bool    `parser:"( @'ok'"`
	Expect  *string `parser:"| 'fail' @String )"`
	Pattern string  `parser:"@Pattern"`
}

func (c *Case) String() string {
	if c.Expect != nil {
		return fmt.Sprintf("%s: fail %q %s", c.Pos, *c.Expect, c.Pattern)
	}
	return fmt.Sprintf("%s: ok %s", c.Pos, c.Pattern)
}

var corpusLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Pattern", Pattern: `/([^\n]*[^\s])?`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Newline", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var corpusParser = participle.MustBuild[File](
	participle.Lexer(corpusLexer),
	participle.Elide("Comment", "Newline", "Whitespace"),
	participle.Unquote("String"),
)

// Parse reads a corpus from r. filename is used in positions only.
func Parse(filename string, r io.Reader) (*File, error) {
	f, err := corpusParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	return f, nil
}

// ParseString reads a corpus from a string.
func ParseString(filename, src string) (*File, error) {
	f, err := corpusParser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	return f, nil
}

// Load reads a corpus file from disk.
func Load(filename string) (*File, error) {
	fh, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer fh.Close()

	return Parse(filename, fh)
}
