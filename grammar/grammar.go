// Package grammar holds the EBNF description of patterns and a reference
// tokenizer driven by it.
package grammar

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed tokens.ebnf
var tokensSource string

//go:embed syntax.ebnf
var syntaxSource string

const (
	// TokenStart is the start production of the lexical grammar.
	TokenStart = "token"
	// SyntaxStart is the start production of the syntax grammar.
	SyntaxStart = "Regexp"
)

// TokensSource returns the text of the lexical grammar.
func TokensSource() string {
	return tokensSource
}

// SyntaxSource returns the text of the syntax grammar.
func SyntaxSource() string {
	return syntaxSource
}

// Tokens parses and verifies the lexical grammar.
func Tokens() (ebnf.Grammar, error) {
	return load("tokens.ebnf", strings.NewReader(tokensSource), TokenStart)
}

// Syntax parses and verifies the syntax grammar.
func Syntax() (ebnf.Grammar, error) {
	return load("syntax.ebnf", strings.NewReader(syntaxSource), SyntaxStart)
}

// LoadGrammar loads an EBNF grammar from a file and verifies it against
// start.
func LoadGrammar(filename, start string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return load(filename, f, start)
}

func load(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
