package grammar

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

// tokenKinds maps the alternatives of the token production to token kinds.
var tokenKinds = map[string]parser.TokenKind{
	"control_escape": parser.TokenControlEscape,
	"class_escape":   parser.TokenCharClassEscape,
	"decimal_escape": parser.TokenDecimalEscape,
	"decimal":        parser.TokenDecimal,
	"char_escape":    parser.TokenCharEscape,
	"syntax_char":    parser.TokenSyntaxChar,
	"pattern_char":   parser.TokenPatternChar,
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes a pattern with the lexical grammar. Unlike the parser's
// tokenizer it knows nothing about the token kinds beyond their production
// names, which makes it a cross-check for the hand-written rules.
type Lexer struct {
	grammar  ebnf.Grammar
	order    []string
	input    string
	pos      int
	memo     map[memoKey]int  // match length, -1 for no match
	visiting map[memoKey]bool // cycle detection
}

// NewLexer creates a lexer for input. The start production must be an
// alternative of production names, each of which names a token kind.
func NewLexer(g ebnf.Grammar, input string) (*Lexer, error) {
	prod, ok := g[TokenStart]
	if !ok || prod.Expr == nil {
		return nil, fmt.Errorf("grammar has no %s production", TokenStart)
	}

	var alts ebnf.Alternative
	switch e := prod.Expr.(type) {
	case ebnf.Alternative:
		alts = e
	default:
		alts = ebnf.Alternative{e}
	}

	order := make([]string, 0, len(alts))
	for _, alt := range alts {
		name, ok := alt.(*ebnf.Name)
		if !ok {
			return nil, fmt.Errorf("%s: alternative %T is not a production name", TokenStart, alt)
		}
		if _, ok := tokenKinds[name.String]; !ok {
			return nil, fmt.Errorf("%s: no token kind for %q", TokenStart, name.String)
		}
		order = append(order, name.String)
	}

	return &Lexer{
		grammar:  g,
		order:    order,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}, nil
}

// NextToken returns the next token. The first alternative of the start
// production that matches a non-empty prefix wins. It returns io.EOF at
// the end of the input.
func (l *Lexer) NextToken() (parser.Token, error) {
	if l.pos >= len(l.input) {
		return parser.Token{Start: l.pos, End: l.pos - 1}, io.EOF
	}

	start := l.pos
	for _, name := range l.order {
		n := l.tryMatchName(name, start)
		if n <= 0 {
			continue
		}
		l.pos += n
		return parser.Token{
			Kind:  tokenKinds[name],
			Value: l.input[start:l.pos],
			Start: start,
			End:   l.pos - 1,
		}, nil
	}
	return parser.Token{}, fmt.Errorf("no token matches %q at offset %d", l.input[start:], start)
}

// Tokenize reads all tokens from input.
func (l *Lexer) Tokenize() ([]parser.Token, error) {
	var tokens []parser.Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// tryMatch returns the length of the longest match of expr at offset, or -1.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		if strings.HasPrefix(l.input[offset:], e.String) {
			return len(e.String)
		}
		return -1

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.tryMatch(item, offset+total)
			if n < 0 {
				return -1
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.tryMatch(e.Body, offset+total)
			if n <= 0 {
				break
			}
			total += n
		}
		return total

	case *ebnf.Option:
		if n := l.tryMatch(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)
	}
	return -1
}

// tryMatchName matches a named production with memoization and cycle detection.
func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if result, ok := l.memo[key]; ok {
		return result
	}
	// Left recursion does not match.
	if l.visiting[key] {
		return -1
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return -1
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = result
	return result
}

// tryMatchRange matches one character between begin and end inclusive.
func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) {
		return -1
	}
	lo, _ := utf8.DecodeRuneInString(begin)
	hi, _ := utf8.DecodeRuneInString(end)
	r, size := utf8.DecodeRuneInString(l.input[offset:])
	if r >= lo && r <= hi {
		return size
	}
	return -1
}
