package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

func TestTreeEncoder(t *testing.T) {
	re, err := parser.ParseRegexp(`/a(b)/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(re); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join([]string{
		`Regexp 0:5 "/a(b)/"`,
		`  Alternative 1:4 "a(b)"`,
		`    Char 1:1 simple U+0061 "a"`,
		`    Group 2:4 capturing #1 "(b)"`,
		`      Char 3:3 simple U+0062 "b"`,
		``,
	}, "\n")
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTreeEncoderWithoutSpans(t *testing.T) {
	re, err := parser.ParseRegexp(`/x{2,}?/g`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := NewTreeEncoder(nil, WithSpans(false)).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if len(text) != 0 {
		t.Errorf("got %q before Encode, want nothing", text)
	}

	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf, WithSpans(false), WithColor(false)).Encode(re); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := strings.Join([]string{
		`Regexp flags=g "/x{2,}?/g"`,
		`  Repetition "x{2,}?"`,
		`    Char simple U+0078 "x"`,
		`    Quantifier min=2 max=inf lazy "{2,}?"`,
		``,
	}, "\n")
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTreeEncoderColor(t *testing.T) {
	re, err := parser.ParseRegexp(`/a/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf, WithColor(true)).Encode(re); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes in %q", buf.String())
	}
}

func TestLineEncoder(t *testing.T) {
	re, err := parser.ParseRegexp(`/a|\t/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(re); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "0\tRegexp\t0\t5\t/a|\\\\t/\n" +
		"1\tDisjunction\t1\t4\ta|\\\\t\n" +
		"2\tChar\t1\t1\ta\n" +
		"2\tControlEscapeChar\t3\t4\t\\\\t\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestASTJSONEncoder(t *testing.T) {
	re, err := parser.ParseRegexp(`/a/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := NewASTJSONEncoder(&buf).Encode(re); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"kind": "Regexp"`) || !strings.Contains(buf.String(), `"kind": "Char"`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestTokenEncoders(t *testing.T) {
	tokens := parser.Tokenize(`a\d`)

	var lines bytes.Buffer
	if err := NewTokenLineEncoder(&lines).Encode(tokens); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "PatternChar\ta\t0\t0\nCharClassEscape\t\\\\d\t1\t2\n"
	if lines.String() != want {
		t.Errorf("got %q, want %q", lines.String(), want)
	}

	var js bytes.Buffer
	if err := NewTokenJSONEncoder(&js).Encode(tokens); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(js.String(), `"kind": "CharClassEscape"`) {
		t.Errorf("unexpected output:\n%s", js.String())
	}
}
