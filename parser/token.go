package parser

import "regexp"

type TokenKind int

const (
	TokenControlEscape TokenKind = iota
	TokenCharClassEscape
	TokenDecimalEscape
	TokenDecimal
	TokenCharEscape
	TokenSyntaxChar
	TokenPatternChar
)

var tokenKindNames = map[TokenKind]string{
	TokenControlEscape:   "ControlEscape",
	TokenCharClassEscape: "CharClassEscape",
	TokenDecimalEscape:   "DecimalEscape",
	TokenDecimal:         "Decimal",
	TokenCharEscape:      "CharEscape",
	TokenSyntaxChar:      "SyntaxChar",
	TokenPatternChar:     "PatternChar",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexical unit of a pattern. Start and End are inclusive byte
// offsets into the source.
type Token struct {
	Kind  TokenKind
	Value string
	Start int
	End   int
}

// Is reports whether the token has the given kind and value.
func (t Token) Is(kind TokenKind, value string) bool {
	return t.Kind == kind && t.Value == value
}

type tokenRule struct {
	kind    TokenKind
	pattern *regexp.Regexp
}

// tokenRules are tried in order; the first one that matches at the cursor
// produces the token.
var tokenRules = []tokenRule{
	{TokenControlEscape, regexp.MustCompile(`^\\[fnrtv]`)},
	{TokenCharClassEscape, regexp.MustCompile(`^\\[dDsSwW]`)},
	{TokenDecimalEscape, regexp.MustCompile(`^\\[0-9]`)},
	{TokenDecimal, regexp.MustCompile(`^[0-9]`)},
	{TokenCharEscape, regexp.MustCompile(`^\\(?s:.)`)},
	{TokenSyntaxChar, regexp.MustCompile(`^[\\.*+?)(\][}{|$^]`)},
	{TokenPatternChar, regexp.MustCompile(`^(?s:.)`)},
}

// Tokenize returns every token of src in order.
func Tokenize(src string) []Token {
	stream := NewTokenStream(src)
	var tokens []Token
	for step := stream.First(); step != nil; step = step.Next() {
		tokens = append(tokens, step.Token)
	}
	return tokens
}
