package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

// TokenJSONEncoder writes a token list as a JSON array.
type TokenJSONEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewTokenJSONEncoder(w io.Writer) *TokenJSONEncoder {
	return &TokenJSONEncoder{w: w}
}

func (e *TokenJSONEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *TokenJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildTokens(e.tokens), "", "  ")
}

type jsonToken struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func buildTokens(tokens []parser.Token) []jsonToken {
	result := make([]jsonToken, len(tokens))
	for i, t := range tokens {
		result[i] = jsonToken{
			Kind:  t.Kind.String(),
			Value: t.Value,
			Start: t.Start,
			End:   t.End,
		}
	}
	return result
}

// TokenLineEncoder writes one tab-separated line per token.
type TokenLineEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewTokenLineEncoder(w io.Writer) *TokenLineEncoder {
	return &TokenLineEncoder{w: w}
}

func (e *TokenLineEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokenLineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, t := range e.tokens {
		fmt.Fprintf(&sb, "%s\t%s\t%d\t%d\n", t.Kind, escapeField(t.Value), t.Start, t.End)
	}
	return []byte(sb.String()), nil
}
