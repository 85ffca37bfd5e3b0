package parser

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		kinds []TokenKind
		want  []string
	}{
		{`abc`, []TokenKind{TokenPatternChar, TokenPatternChar, TokenPatternChar}, []string{"a", "b", "c"}},
		{`\n\d`, []TokenKind{TokenControlEscape, TokenCharClassEscape}, []string{`\n`, `\d`}},
		{`\12`, []TokenKind{TokenDecimalEscape, TokenDecimal}, []string{`\1`, "2"}},
		{`\.\k`, []TokenKind{TokenCharEscape, TokenCharEscape}, []string{`\.`, `\k`}},
		{`(a)|[b]`, []TokenKind{
			TokenSyntaxChar, TokenPatternChar, TokenSyntaxChar, TokenSyntaxChar,
			TokenSyntaxChar, TokenPatternChar, TokenSyntaxChar,
		}, []string{"(", "a", ")", "|", "[", "b", "]"}},
		{`a\`, []TokenKind{TokenPatternChar, TokenSyntaxChar}, []string{"a", `\`}},
		{"é/", []TokenKind{TokenPatternChar, TokenPatternChar}, []string{"é", "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.kinds), tokens)
			}
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: kind = %s, want %s", i, tok.Kind, tt.kinds[i])
				}
				if tok.Value != tt.want[i] {
					t.Errorf("token %d: value = %q, want %q", i, tok.Value, tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeSpans(t *testing.T) {
	tokens := Tokenize(`a\dé`)
	want := []Span{{0, 0}, {1, 2}, {3, 4}}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		got := Span{tok.Start, tok.End}
		if got != want[i] {
			t.Errorf("token %d: span = %v, want %v", i, got, want[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("got %v, want no tokens", tokens)
	}
}

func TestTokenKindString(t *testing.T) {
	if got := TokenDecimalEscape.String(); got != "DecimalEscape" {
		t.Errorf("got %q, want %q", got, "DecimalEscape")
	}
	if got := TokenKind(99).String(); got != "Unknown" {
		t.Errorf("got %q, want %q", got, "Unknown")
	}
}

func TestTokenStreamMemoizesSteps(t *testing.T) {
	ts := NewTokenStream("abc")
	first := ts.First()
	if first == nil {
		t.Fatal("First() = nil")
	}
	if first.Next() != ts.First().Next() {
		t.Error("revisiting a position yielded a different step")
	}
	if !first.IsFirst() {
		t.Error("first step does not report IsFirst")
	}
	last := first.Next().Next()
	if !last.IsLast() {
		t.Error("last step does not report IsLast")
	}
	if last.Next() != nil {
		t.Errorf("step after the last one = %v, want nil", last.Next())
	}
}

func TestInputStreamCollect(t *testing.T) {
	in := NewInputStream(`\da`)
	value, start, end, ok := in.Collect(tokenRules[1].pattern)
	if !ok || value != `\d` || start != 0 || end != 1 {
		t.Errorf("got (%q, %d, %d, %v), want (%q, 0, 1, true)", value, start, end, ok, `\d`)
	}
	if _, _, _, ok := in.Collect(tokenRules[1].pattern); ok {
		t.Error("class escape rule matched a plain letter")
	}
	if in.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", in.Offset())
	}
	if _, _, _, ok := in.Collect(tokenRules[6].pattern); !ok {
		t.Error("pattern char rule did not match")
	}
	if !in.AtEnd() {
		t.Error("AtEnd() = false after consuming everything")
	}
}
