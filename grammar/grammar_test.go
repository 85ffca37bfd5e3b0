package grammar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

func TestEmbeddedGrammarsVerify(t *testing.T) {
	if _, err := Tokens(); err != nil {
		t.Errorf("Tokens: %v", err)
	}
	if _, err := Syntax(); err != nil {
		t.Errorf("Syntax: %v", err)
	}
}

func TestLoadGrammarReportsUnreachableProductions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ebnf")
	src := `token = "a" .
orphan = "b" .
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadGrammar(path, TokenStart)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "orphan") {
		t.Errorf("error %q does not name the unreachable production", err)
	}
}

func TestLoadGrammarMissingFile(t *testing.T) {
	if _, err := LoadGrammar(filepath.Join(t.TempDir(), "missing.ebnf"), TokenStart); err == nil {
		t.Error("expected an error")
	}
}

func TestLexerAgreesWithTokenize(t *testing.T) {
	g, err := Tokens()
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}

	inputs := []string{
		``,
		`abc`,
		`/a(b)|[c-d]/gi`,
		`\d\D\s\S\w\W`,
		`\f\n\r\t\v`,
		`\0\12\378`,
		`\x4F\u{1F600}\cJ\k<n>`,
		`^a*?b+c{2,3}$`,
		`\/\.\\`,
		`é😀ü`,
		`a\`,
		"line\nbreak",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			lexer, err := NewLexer(g, input)
			if err != nil {
				t.Fatalf("NewLexer: %v", err)
			}
			got, err := lexer.Tokenize()
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			want := parser.Tokenize(input)
			if len(got) != len(want) {
				t.Fatalf("got %d tokens, want %d\ngot  %v\nwant %v", len(got), len(want), got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestNewLexerRejectsForeignStart(t *testing.T) {
	g, err := Syntax()
	if err != nil {
		t.Fatalf("Syntax: %v", err)
	}
	if _, err := NewLexer(g, "a"); err == nil {
		t.Error("expected an error for a grammar without a token production")
	}
}
